package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"fdwarf/internal/config"
	"fdwarf/internal/render"
	"fdwarf/internal/typegraph"
)

func cmdGraph(args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	bin := fs.String("bin", "", "path to the module ELF")
	out := fs.String("out", "", "output DOT file")
	cfgPath := fs.String("config", "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *bin == "" || *out == "" {
		return fmt.Errorf("--bin and --out are required")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	ef, sigs, funcs, err := loadSignatures(*bin, cfg)
	if err != nil {
		return err
	}
	defer ef.Close()

	if funcs.Empty() {
		return fmt.Errorf("%s not found in %s", cfg.Sections.Functions, *bin)
	}

	g := typegraph.Build(sigs)
	dot := render.TypeGraphDOT(g, filepath.Base(*bin))
	if err := os.WriteFile(*out, []byte(dot), 0644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d functions, %d edges)\n", *out, len(g.Nodes), len(g.Edges))
	return nil
}
