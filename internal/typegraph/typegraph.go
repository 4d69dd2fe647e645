// Package typegraph relates exported functions to the types their
// signatures reference.
package typegraph

import (
	"github.com/zboralski/lattice"

	"fdwarf/internal/sig"
)

// Build constructs a lattice.Graph with one node per exported function and
// one edge per type its signature references. The return type and every
// parameter type contribute an edge; void contributes nothing. Duplicate
// edges are removed.
func Build(sigs []sig.Signature) *lattice.Graph {
	g := &lattice.Graph{}
	for _, s := range sigs {
		g.Nodes = append(g.Nodes, s.Name)
		if s.Return != "void" {
			g.Edges = append(g.Edges, lattice.Edge{Caller: s.Name, Callee: s.Return})
		}
		for _, p := range s.Params {
			if p.Type == "void" {
				continue
			}
			g.Edges = append(g.Edges, lattice.Edge{Caller: s.Name, Callee: p.Type})
		}
	}
	g.Dedup()
	return g
}
