// Package elfx provides ELF loading helpers for module binaries.
package elfx

import (
	"debug/dwarf"
	"debug/elf"
	"errors"
	"fmt"
	"os"
)

var (
	ErrNotELF    = errors.New("elfx: not an ELF file")
	ErrNoDWARF   = errors.New("elfx: no DWARF info (compile with -g)")
	ErrNoSection = errors.New("elfx: section not found")
)

// File wraps a debug/elf.File with convenience methods for module binaries.
type File struct {
	ELF *elf.File
	raw *os.File
}

// Open opens an ELF module binary. No machine or class restriction is
// applied; the cross toolchain decides those.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("elfx: open: %w", err)
	}

	ef, err := elf.NewFile(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrNotELF, err)
	}

	return &File{ELF: ef, raw: f}, nil
}

// Close releases resources.
func (f *File) Close() error {
	f.ELF.Close()
	return f.raw.Close()
}

// DWARF parses the binary's debug information. A binary without a
// .debug_info section is rejected up front so callers see a clean error
// instead of a decode failure; debug/dwarf rejects empty or truncated
// input as too short, and that is mapped to ErrNoDWARF as well.
func (f *File) DWARF() (*dwarf.Data, error) {
	if f.ELF.Section(".debug_info") == nil && f.ELF.Section(".zdebug_info") == nil {
		return nil, ErrNoDWARF
	}
	d, err := f.ELF.DWARF()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDWARF, err)
	}
	return d, nil
}

// Range is a section address range used as an inclusion test.
type Range struct {
	Addr uint64
	Size uint64
}

// Contains reports whether addr lies in [Addr, Addr+Size).
func (r Range) Contains(addr uint64) bool {
	return addr >= r.Addr && addr < r.Addr+r.Size
}

// Empty reports whether the range was never located. A section loaded at
// address zero counts as absent.
func (r Range) Empty() bool { return r.Addr == 0 }

// SectionRange returns the address range of a named section. The range is
// zeroed when the section is absent.
func (f *File) SectionRange(name string) Range {
	s := f.ELF.Section(name)
	if s == nil {
		return Range{}
	}
	return Range{Addr: s.Addr, Size: s.Size}
}

// SectionData returns the contents and address range of a named section.
func (f *File) SectionData(name string) ([]byte, Range, error) {
	s := f.ELF.Section(name)
	if s == nil {
		return nil, Range{}, fmt.Errorf("%w: %s", ErrNoSection, name)
	}
	data, err := s.Data()
	if err != nil {
		return nil, Range{}, fmt.Errorf("elfx: read %s: %w", name, err)
	}
	return data, Range{Addr: s.Addr, Size: s.Size}, nil
}
