package main

import (
	"fdwarf/internal/config"
	"fdwarf/internal/dwarfx"
	"fdwarf/internal/elfx"
	"fdwarf/internal/sig"
)

// loadSignatures opens the binary and reconstructs the exported-function
// signatures for the read-only commands (scan, graph, inspect). The caller
// owns the returned File and must Close it.
func loadSignatures(bin string, cfg config.Config) (*elfx.File, []sig.Signature, elfx.Range, error) {
	ef, err := elfx.Open(bin)
	if err != nil {
		return nil, nil, elfx.Range{}, err
	}

	d, err := ef.DWARF()
	if err != nil {
		ef.Close()
		return nil, nil, elfx.Range{}, err
	}

	funcs := ef.SectionRange(cfg.Sections.Functions)
	if funcs.Empty() {
		return ef, nil, funcs, nil
	}

	units, err := dwarfx.LoadUnits(d)
	if err != nil {
		ef.Close()
		return nil, nil, elfx.Range{}, err
	}
	sigs, err := sig.Extract(units, funcs)
	if err != nil {
		ef.Close()
		return nil, nil, elfx.Range{}, err
	}
	return ef, sigs, funcs, nil
}
