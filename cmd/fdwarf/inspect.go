package main

import (
	"flag"
	"fmt"
	"os"

	"fdwarf/internal/config"
	"fdwarf/internal/disasm"
)

func cmdInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	bin := fs.String("bin", "", "path to the module ELF")
	out := fs.String("out", "", "output file (default stdout)")
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

	ef, sigs, _, err := loadSignatures(*bin, cfg)
	if err != nil {
		return err
	}
	defer ef.Close()

	data, rng, err := ef.SectionData(cfg.Sections.Functions)
	if err != nil {
		return err
	}

	byAddr := make(map[uint64]string, len(sigs))
	for _, s := range sigs {
		byAddr[s.Addr] = s.Name
	}
	lookup := func(addr uint64) (string, bool) {
		name, ok := byAddr[addr]
		return name, ok
	}

	insts := disasm.Disassemble(data, rng.Addr)
	text := disasm.Format(insts, lookup)

	if *out == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(*out, []byte(text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d instructions)\n", *out, len(insts))
	return nil
}
