// Package sig reconstructs the signatures of functions a module binary
// places in its exported-function section.
package sig

import (
	"debug/dwarf"
	"fmt"
	"strings"

	"fdwarf/internal/dwarfx"
	"fdwarf/internal/elfx"
)

// Param is one formal parameter in declaration order.
type Param struct {
	Type string
	Name string
}

func (p Param) String() string { return p.Type + " " + p.Name }

// Signature describes one exported function. Immutable after Extract.
type Signature struct {
	Addr   uint64
	Return string
	Name   string
	Class  dwarfx.SizeClass
	Params []Param
}

// Decl renders the C declaration without a trailing semicolon.
func (s Signature) Decl() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("%s %s(%s)", s.Return, s.Name, strings.Join(params, ", "))
}

// Tag returns the identifier naming the function's slot in the call table.
// Unique only as long as function names are unique within the binary.
func (s Signature) Tag(pkg string) string {
	return fmt.Sprintf("_%s_%s", pkg, s.Name)
}

// Extract collects a signature for every direct child of a unit root with
// tag subprogram whose entry address lies in the function range. Records
// without an entry address or outside the range are skipped, not errors.
// The result order is discovery order and determines call-table layout.
func Extract(units []*dwarfx.Unit, funcs elfx.Range) ([]Signature, error) {
	var sigs []Signature
	for _, u := range units {
		for _, rec := range u.Root().Children {
			if rec.Tag != dwarf.TagSubprogram {
				continue
			}
			pc, ok := rec.LowPC()
			if !ok || !funcs.Contains(pc) {
				continue
			}
			name, ok := rec.Name()
			if !ok {
				continue
			}

			ret, class, err := dwarfx.ReturnType(u, rec)
			if err != nil {
				return nil, fmt.Errorf("sig: %s: %w", name, err)
			}
			s := Signature{Addr: pc, Return: ret, Name: name, Class: class}
			for _, c := range rec.Children {
				if c.Tag != dwarf.TagFormalParameter {
					continue
				}
				// A parameter without a name stays in the list; the
				// generated code won't compile and points back here.
				pname, _ := c.Name()
				s.Params = append(s.Params, Param{
					Type: dwarfx.ParamType(u, c).CName(),
					Name: pname,
				})
			}
			sigs = append(sigs, s)
		}
	}
	return sigs, nil
}
