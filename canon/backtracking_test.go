package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotientgraph/pact/canon"
	"github.com/quotientgraph/pact/graph"
)

var _ canon.Oracle = (*canon.Backtracking)(nil)

func triangle() *graph.Graph {
	g := graph.New()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "a")
	return g
}

func path3() *graph.Graph {
	g := graph.New()
	_, _ = g.AddEdge("x", "y")
	_, _ = g.AddEdge("y", "z")
	return g
}

func TestCanon_Deterministic(t *testing.T) {
	o := canon.NewBacktracking()
	g := triangle()
	require.Equal(t, o.Canon(g), o.Canon(g))
}

func TestAreIsomorphic_Triangle(t *testing.T) {
	o := canon.NewBacktracking()
	a := triangle()
	b := graph.New()
	_, _ = b.AddEdge("1", "2")
	_, _ = b.AddEdge("2", "3")
	_, _ = b.AddEdge("3", "1")

	assert.True(t, o.AreIsomorphic(a, b))
}

func TestAreIsomorphic_DifferentShape(t *testing.T) {
	o := canon.NewBacktracking()
	assert.False(t, o.AreIsomorphic(triangle(), path3()))
}

func TestAutomorphismCount_Triangle(t *testing.T) {
	o := canon.NewBacktracking()
	// C3/K3's automorphism group is the full symmetric group S3: 6 elements.
	assert.Equal(t, int64(6), o.AutomorphismCount(triangle()).Int64())
}

func TestAutomorphismCount_Path3(t *testing.T) {
	o := canon.NewBacktracking()
	// P3 has only the identity and the end-to-end reflection: 2 elements.
	assert.Equal(t, int64(2), o.AutomorphismCount(path3()).Int64())
}
