// Package dwarfx builds per-compilation-unit trees of DWARF records and
// resolves the parameter and return types of exported module functions.
package dwarfx

import (
	"debug/dwarf"
	"fmt"
)

// Record is one DWARF entry with its immediate children, read-only after
// LoadUnits returns.
type Record struct {
	Tag      dwarf.Tag
	Offset   dwarf.Offset
	Attrs    map[dwarf.Attr]any
	Children []*Record
}

// Name returns the record's declared name.
func (r *Record) Name() (string, bool) {
	s, ok := r.Attrs[dwarf.AttrName].(string)
	return s, ok
}

// TypeRef returns the offset of the record's type reference.
func (r *Record) TypeRef() (dwarf.Offset, bool) {
	off, ok := r.Attrs[dwarf.AttrType].(dwarf.Offset)
	return off, ok
}

// ByteSize returns the record's declared byte size.
func (r *Record) ByteSize() (int64, bool) {
	n, ok := r.Attrs[dwarf.AttrByteSize].(int64)
	return n, ok
}

// LowPC returns the record's entry address.
func (r *Record) LowPC() (uint64, bool) {
	pc, ok := r.Attrs[dwarf.AttrLowpc].(uint64)
	return pc, ok
}

// Unit is one compilation unit with an offset index over all of its records.
type Unit struct {
	root     *Record
	byOffset map[dwarf.Offset]*Record
}

// NewUnit indexes a record tree rooted at a compile-unit record. Offsets are
// unique within a unit, so the index returns the same record a full
// last-match scan would.
func NewUnit(root *Record) *Unit {
	u := &Unit{root: root, byOffset: make(map[dwarf.Offset]*Record)}
	var walk func(*Record)
	walk = func(r *Record) {
		u.byOffset[r.Offset] = r
		for _, c := range r.Children {
			walk(c)
		}
	}
	walk(root)
	return u
}

// Root returns the unit's compile-unit record.
func (u *Unit) Root() *Record { return u.root }

// At returns the record at the given offset, or nil when the unit has none.
func (u *Unit) At(off dwarf.Offset) *Record { return u.byOffset[off] }

// LoadUnits reads every compilation unit from the DWARF data in one pass.
// The reader emits entries in tree order with null entries closing each
// child list, so nesting is tracked with a stack.
func LoadUnits(d *dwarf.Data) ([]*Unit, error) {
	r := d.Reader()
	var roots []*Record
	var stack []*Record
	for {
		e, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("dwarfx: read entry: %w", err)
		}
		if e == nil {
			break
		}
		if e.Tag == 0 {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		rec := &Record{
			Tag:    e.Tag,
			Offset: e.Offset,
			Attrs:  make(map[dwarf.Attr]any, len(e.Field)),
		}
		for _, f := range e.Field {
			rec.Attrs[f.Attr] = f.Val
		}

		if e.Tag == dwarf.TagCompileUnit {
			roots = append(roots, rec)
			stack = stack[:0]
		} else if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, rec)
		}
		if e.Children {
			stack = append(stack, rec)
		}
	}

	units := make([]*Unit, 0, len(roots))
	for _, root := range roots {
		units = append(units, NewUnit(root))
	}
	return units, nil
}
