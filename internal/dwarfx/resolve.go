package dwarfx

import (
	"debug/dwarf"
	"errors"
	"fmt"
)

// ErrUnsupportedSize reports a return type whose byte size maps to no size
// class.
var ErrUnsupportedSize = errors.New("dwarfx: unsupported return type size")

// SizeClass selects the runtime marshaling routine for a return value.
type SizeClass int

const (
	SizeVoid SizeClass = iota
	SizeInt8
	SizeInt16
	SizeInt32
)

// Literal returns the C literal the generated dispatch call passes for the
// class.
func (c SizeClass) Literal() string {
	switch c {
	case SizeInt8:
		return "fmr_int8_t"
	case SizeInt16:
		return "fmr_int16_t"
	case SizeInt32:
		return "fmr_int32_t"
	default:
		return "fmr_void_t"
	}
}

func classify(size int64) (SizeClass, error) {
	switch size {
	case 1:
		return SizeInt8, nil
	case 2:
		return SizeInt16, nil
	case 4:
		return SizeInt32, nil
	}
	return SizeVoid, fmt.Errorf("%w: %d bytes", ErrUnsupportedSize, size)
}

// ResolvedType is the outcome of resolving a parameter's type reference:
// a named type, an unnamed-but-sized type, or void.
type ResolvedType struct {
	Name     string
	ByteSize int64
	Sized    bool
}

// CName returns the C type name used in generated declarations. Unnamed but
// sized types are reported as opaque pointers.
func (t ResolvedType) CName() string {
	if t.Name != "" {
		return t.Name
	}
	if t.Sized {
		return "void *"
	}
	return "void"
}

// ParamType resolves a formal parameter's type. A typedef is dereferenced
// exactly once; a deeper alias chain keeps the intermediate name. A missing
// or dangling type reference resolves to void.
//
// Return types unwrap aliases fully (see ReturnType); parameters do not.
// The consuming runtime has only ever seen the single-step form, so the two
// depths stay distinct.
func ParamType(u *Unit, rec *Record) ResolvedType {
	off, ok := rec.TypeRef()
	if !ok {
		return ResolvedType{}
	}
	t := u.At(off)
	if t == nil {
		return ResolvedType{}
	}
	if t.Tag == dwarf.TagTypedef {
		off, ok := t.TypeRef()
		if !ok {
			return ResolvedType{}
		}
		if t = u.At(off); t == nil {
			return ResolvedType{}
		}
	}
	if name, ok := t.Name(); ok {
		return ResolvedType{Name: name}
	}
	if size, ok := t.ByteSize(); ok {
		return ResolvedType{ByteSize: size, Sized: true}
	}
	return ResolvedType{}
}

// ReturnType resolves a subprogram's return type and classifies it by byte
// size (1, 2, or 4 bytes; anything else is ErrUnsupportedSize). Typedef
// chains are followed to the end. A subprogram with no type reference, or
// one whose final record carries neither name nor size, returns void.
//
// Void returns carry the INT16 class: the dispatch runtime has been handed
// fmr_int16_t for void since the first generator and changing it needs
// confirmation on the runtime side first.
func ReturnType(u *Unit, rec *Record) (string, SizeClass, error) {
	off, ok := rec.TypeRef()
	if !ok {
		return "void", SizeInt16, nil
	}
	t := u.At(off)
	// A typedef cycle can only come from malformed debug info; treat it
	// like a dangling reference instead of looping.
	seen := map[dwarf.Offset]bool{off: true}
	for t != nil && t.Tag == dwarf.TagTypedef {
		next, ok := t.TypeRef()
		if !ok || seen[next] {
			t = nil
			break
		}
		seen[next] = true
		t = u.At(next)
	}
	if t == nil {
		return "void", SizeInt16, nil
	}

	if name, ok := t.Name(); ok {
		size, _ := t.ByteSize()
		class, err := classify(size)
		if err != nil {
			return "", SizeVoid, fmt.Errorf("dwarfx: return type %s: %w", name, err)
		}
		return name, class, nil
	}
	if size, ok := t.ByteSize(); ok {
		class, err := classify(size)
		if err != nil {
			return "", SizeVoid, err
		}
		return "void *", class, nil
	}
	return "void", SizeInt16, nil
}
