package decomp

import (
	"fmt"

	"github.com/quotientgraph/pact/graph"
	"github.com/quotientgraph/pact/hypergraph"
)

// PatternHypergraph converts a pattern graph into the hypergraph consumed
// by the decomposition acquirer: one binary hyperedge "E_i" per pattern
// edge, in edge-ID order. Ported from balgowrapper.py's
// _make_edge_conversion_map/_G_to_HG.
func PatternHypergraph(p *graph.Graph) *hypergraph.Hypergraph {
	hg := hypergraph.New()
	for i, e := range p.Edges() {
		_ = hg.AddEdge(fmt.Sprintf("E_%d", i), e.From, e.To)
	}
	return hg
}
