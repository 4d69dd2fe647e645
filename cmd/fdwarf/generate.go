package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"fdwarf/internal/config"
	"fdwarf/internal/gen"
	"fdwarf/internal/logging"
)

func cmdGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	bin := fs.String("bin", "", "path to the module ELF")
	pkg := fs.String("package", "", "package identifier")
	templates := fs.String("templates", "", "directory holding template.h and template.c")
	out := fs.String("out", "", "output directory")
	cfgPath := fs.String("config", "", "YAML config file")
	logLevel := fs.String("log-level", "info", "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *bin == "" || *pkg == "" {
		return fmt.Errorf("--bin and --package are required")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *templates != "" {
		cfg.Templates.Header = filepath.Join(*templates, "template.h")
		cfg.Templates.Source = filepath.Join(*templates, "template.c")
	}
	if *out != "" {
		cfg.OutDir = *out
	}

	return gen.Generate(*bin, *pkg, gen.Options{
		FuncSection:    cfg.Sections.Functions,
		DataSection:    cfg.Sections.Data,
		HeaderTemplate: cfg.Templates.Header,
		SourceTemplate: cfg.Templates.Source,
		OutDir:         cfg.OutDir,
		Log:            logging.New(*logLevel),
	})
}
