package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fdwarf/internal/config"
	"fdwarf/internal/elfx"
	"fdwarf/internal/sig"
)

func cmdScan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	bin := fs.String("bin", "", "path to the module ELF")
	cfgPath := fs.String("config", "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *bin == "" {
		return fmt.Errorf("--bin is required")
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

	vars := ef.SectionRange(cfg.Sections.Data)
	scanReport(os.Stderr, cfg, sigs, funcs, vars)
	return nil
}

// scanReport writes the section ranges and every reconstructed signature to
// a single diagnostic stream. Scan writes no files and nothing to stdout.
func scanReport(w io.Writer, cfg config.Config, sigs []sig.Signature, funcs, vars elfx.Range) {
	fmt.Fprintf(w, "%-12s 0x%08x + 0x%x\n", cfg.Sections.Functions, funcs.Addr, funcs.Size)
	fmt.Fprintf(w, "%-12s 0x%08x + 0x%x\n", cfg.Sections.Data, vars.Addr, vars.Size)
	if funcs.Empty() {
		fmt.Fprintln(w, "function section not found; generate would produce no output")
		return
	}

	for _, s := range sigs {
		fmt.Fprintf(w, "0x%08x  %s;  [%s]\n", s.Addr, s.Decl(), s.Class.Literal())
	}
	fmt.Fprintf(w, "%d functions\n", len(sigs))
}
