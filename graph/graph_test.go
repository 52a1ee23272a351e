package graph_test

import (
	"testing"

	"github.com/quotientgraph/pact/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeRejectsLoop(t *testing.T) {
	g := graph.New()
	_, err := g.AddEdge("a", "a")
	require.ErrorIs(t, err, graph.ErrLoopNotAllowed)
}

func TestAddEdgeRejectsParallelByDefault(t *testing.T) {
	g := graph.New()
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b")
	require.ErrorIs(t, err, graph.ErrMultiEdgeNotAllowed)
}

func TestUndirectedDegreeAndNeighbors(t *testing.T) {
	g := graph.New()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "a")

	assert.Equal(t, 2, g.Degree("a"))
	assert.ElementsMatch(t, []string{"b", "c"}, g.Neighbors("a"))
}

func TestShapeCycleAndStar(t *testing.T) {
	triangle := graph.New()
	_, _ = triangle.AddEdge("a", "b")
	_, _ = triangle.AddEdge("b", "c")
	_, _ = triangle.AddEdge("c", "a")
	triangle.RecomputeShape()
	assert.True(t, triangle.Shape().IsCycle)
	assert.True(t, triangle.Shape().IsClique) // K3 is also a 3-cycle

	star := graph.New()
	_, _ = star.AddEdge("center", "l1")
	_, _ = star.AddEdge("center", "l2")
	_, _ = star.AddEdge("center", "l3")
	star.RecomputeShape()
	assert.True(t, star.Shape().IsStar)
	assert.Equal(t, 3, star.Shape().StarDegree)
}

func TestCloneIsIndependent(t *testing.T) {
	g := graph.New()
	_, _ = g.AddEdge("a", "b")
	clone := g.Clone()
	require.NotEqual(t, g.ID(), clone.ID())
	_, _ = clone.AddEdge("b", "c")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, clone.EdgeCount())
}

func TestIsConnected(t *testing.T) {
	g := graph.New()
	_, _ = g.AddEdge("a", "b")
	_ = g.AddVertex("z")
	assert.False(t, g.IsConnected())
}
