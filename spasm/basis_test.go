package spasm_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotientgraph/pact/canon"
	"github.com/quotientgraph/pact/graph"
	"github.com/quotientgraph/pact/spasm"
)

func singleEdge() *graph.Graph {
	g := graph.New()
	_, _ = g.AddEdge("a", "b")
	return g
}

// TestBasisCoefficients_ExpandsAndComputesCoefficient exercises the single
// nontrivial partition of a 2-vertex edge ({a},{b}), which maps straight
// back to the graph itself: partition product 1, automorphism count 2
// (swap a/b), sign +1 since |V(G)|=|V(F)|.
func TestBasisCoefficients_ExpandsAndComputesCoefficient(t *testing.T) {
	sp := spasm.NewSpace(canon.NewBacktracking())
	g := singleEdge()

	coeffs, err := spasm.BasisCoefficients(context.Background(), g, sp, spasm.AllowExpand, true)
	require.NoError(t, err)
	require.Len(t, coeffs, 1)
	assert.Equal(t, 1, sp.Len())

	for _, c := range coeffs {
		assert.Equal(t, big.NewRat(1, 2), c)
	}
}

// TestBasisCoefficients_ForbidExpandFailsOnMiss asserts ErrBasisIncomplete
// surfaces when the space has no isomorphic match and growth is disabled.
func TestBasisCoefficients_ForbidExpandFailsOnMiss(t *testing.T) {
	sp := spasm.NewSpace(canon.NewBacktracking())
	g := singleEdge()

	_, err := spasm.BasisCoefficients(context.Background(), g, sp, spasm.ForbidExpand, true)
	assert.ErrorIs(t, err, spasm.ErrBasisIncomplete)
	assert.Equal(t, 0, sp.Len())
}

// TestBasisCoefficients_ReusesExistingBasisGraph seeds the space with the
// quotient graph ahead of time and checks the coefficient is computed
// without growing the space.
func TestBasisCoefficients_ReusesExistingBasisGraph(t *testing.T) {
	sp := spasm.NewSpace(canon.NewBacktracking())
	seed := singleEdge()
	id := sp.Add(seed)

	coeffs, err := spasm.BasisCoefficients(context.Background(), singleEdge(), sp, spasm.ForbidExpand, true)
	require.NoError(t, err)
	require.Contains(t, coeffs, id)
	assert.Equal(t, 1, sp.Len())
}

// TestBasisCoefficients_RequiresOracle checks the oracle-not-set guard.
func TestBasisCoefficients_RequiresOracle(t *testing.T) {
	sp := spasm.NewSpace(nil)
	_, err := spasm.BasisCoefficients(context.Background(), singleEdge(), sp, spasm.AllowExpand, true)
	assert.Error(t, err)
}
