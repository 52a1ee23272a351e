package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotientgraph/pact/decomp"
	"github.com/quotientgraph/pact/graph"
)

func path3Pattern() *graph.Graph {
	g := graph.New(graph.WithDirected(false))
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	return g
}

func triangle() *graph.Graph {
	g := graph.New(graph.WithDirected(false))
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "a")
	return g
}

func TestGYOJoinTree_AcyclicPath(t *testing.T) {
	hg := decomp.PatternHypergraph(path3Pattern())
	root, err := decomp.GYOJoinTree(hg)
	require.NoError(t, err)

	for _, n := range root.Nodes() {
		assert.Len(t, n.CoverMap, 1)
	}
}

func TestGYOJoinTree_Cyclic(t *testing.T) {
	hg := decomp.PatternHypergraph(triangle())
	_, err := decomp.GYOJoinTree(hg)
	assert.ErrorIs(t, err, decomp.ErrCyclicHypergraph)
}
