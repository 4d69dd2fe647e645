package typegraph

import (
	"testing"

	"fdwarf/internal/dwarfx"
	"fdwarf/internal/sig"
)

func TestBuild(t *testing.T) {
	sigs := []sig.Signature{
		{
			Name: "add", Return: "int32_t", Class: dwarfx.SizeInt32,
			Params: []sig.Param{
				{Type: "int32_t", Name: "a"},
				{Type: "int32_t", Name: "b"},
			},
		},
		{Name: "reset", Return: "void", Class: dwarfx.SizeInt16},
	}

	g := Build(sigs)

	if len(g.Nodes) != 2 {
		t.Errorf("nodes = %v, want [add reset]", g.Nodes)
	}
	// add→int32_t appears three times in the signature but once in the graph.
	if len(g.Edges) != 1 {
		t.Errorf("edges = %v, want single deduped add→int32_t", g.Edges)
	}
	if len(g.Edges) == 1 {
		e := g.Edges[0]
		if e.Caller != "add" || e.Callee != "int32_t" {
			t.Errorf("edge = %+v", e)
		}
	}
}

func TestBuildSkipsVoid(t *testing.T) {
	sigs := []sig.Signature{
		{
			Name: "poke", Return: "void", Class: dwarfx.SizeInt16,
			Params: []sig.Param{{Type: "void", Name: "nothing"}},
		},
	}
	g := Build(sigs)
	if len(g.Edges) != 0 {
		t.Errorf("void references produced edges: %v", g.Edges)
	}
}
