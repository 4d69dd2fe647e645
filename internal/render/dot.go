// Package render emits DOT documents from analysis results.
package render

import (
	"fmt"
	"strings"

	"github.com/zboralski/lattice"
)

// TypeGraphDOT renders a function/type reference graph as DOT. Functions
// are boxes, referenced types plain ellipses; edges run function → type.
func TypeGraphDOT(g *lattice.Graph, title string) string {
	known := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		known[n] = true
	}

	var b strings.Builder
	b.WriteString("digraph types {\n")
	fmt.Fprintf(&b, "  label=%q;\n", title)
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [fontsize=11];\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "  %q [shape=box];\n", n)
	}
	declared := make(map[string]bool)
	for _, e := range g.Edges {
		if known[e.Callee] || declared[e.Callee] {
			continue
		}
		declared[e.Callee] = true
		fmt.Fprintf(&b, "  %q [shape=ellipse];\n", e.Callee)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %q -> %q;\n", e.Caller, e.Callee)
	}

	b.WriteString("}\n")
	return b.String()
}
