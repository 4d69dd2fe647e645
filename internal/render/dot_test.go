package render

import (
	"strings"
	"testing"

	"github.com/zboralski/lattice"
)

func TestTypeGraphDOT(t *testing.T) {
	g := &lattice.Graph{
		Nodes: []string{"add", "reset"},
		Edges: []lattice.Edge{
			{Caller: "add", Callee: "int32_t"},
			{Caller: "reset", Callee: "int32_t"},
		},
	}

	dot := TypeGraphDOT(g, "demo.elf")

	for _, want := range []string{
		"digraph types {",
		`label="demo.elf";`,
		`"add" [shape=box];`,
		`"reset" [shape=box];`,
		`"int32_t" [shape=ellipse];`,
		`"add" -> "int32_t";`,
		`"reset" -> "int32_t";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Count(dot, `"int32_t" [shape=ellipse];`) != 1 {
		t.Error("type node declared more than once")
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("DOT not closed")
	}
}

func TestTypeGraphDOTEmpty(t *testing.T) {
	dot := TypeGraphDOT(&lattice.Graph{}, "empty")
	if !strings.Contains(dot, "digraph types {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty graph DOT malformed:\n%s", dot)
	}
}
