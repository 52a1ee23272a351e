package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotientgraph/pact/builder"
	"github.com/quotientgraph/pact/graph"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Len(t, g.Vertices(), 4)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("0", "1"))
	assert.True(t, g.HasEdge("2", "3"))
}

func TestPath_TooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	assert.Len(t, g.Vertices(), 4)
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("3", "0"), "cycle must close the ring")
}

func TestCycle_TooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestStar(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(5))
	require.NoError(t, err)
	assert.Len(t, g.Vertices(), 5)
	assert.Equal(t, 4, g.EdgeCount())
	for _, leaf := range []string{"1", "2", "3", "4"} {
		assert.True(t, g.HasEdge(builder.CenterVertexID, leaf))
	}
}

func TestWheel(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(5))
	require.NoError(t, err)
	// C_4 (4 vertices, 4 edges) + hub + 4 spokes = 5 vertices, 8 edges.
	assert.Len(t, g.Vertices(), 5)
	assert.Equal(t, 8, g.EdgeCount())
}

func TestWheel_TooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Wheel(3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Len(t, g.Vertices(), 4)
	assert.Equal(t, 6, g.EdgeCount()) // K4 has C(4,2)=6 edges
}

func TestComplete_Directed(t *testing.T) {
	g, err := builder.BuildGraph([]graph.Option{graph.WithDirected(true)}, nil, builder.Complete(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount()) // each unordered pair mirrored
}

func TestCompleteBipartite(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.CompleteBipartite(2, 3))
	require.NoError(t, err)
	assert.Len(t, g.Vertices(), 5)
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge("L0", "R0"))
	assert.True(t, g.HasEdge("L1", "R2"))
}

func TestCompleteBipartite_CustomPrefix(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithPartitionPrefix("A", "B")},
		builder.CompleteBipartite(1, 1))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A0", "B0"))
}

func TestCompleteBipartite_TooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.CompleteBipartite(0, 2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_CustomIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)},
		builder.Path(3))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "C"))
}

func TestBuildGraph_ComposesConstructors(t *testing.T) {
	// Star(3) builds {Center,1,2}; Path(2) adds {0,1} and edge 0->1, where
	// "1" already exists from Star and AddVertex on an existing ID is a no-op.
	g, err := builder.BuildGraph(nil, nil, builder.Star(3), builder.Path(2))
	require.NoError(t, err)
	assert.Len(t, g.Vertices(), 4)
	assert.True(t, g.HasEdge("0", "1"))
	assert.True(t, g.HasEdge(builder.CenterVertexID, "1"))
}
