package decomp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotientgraph/pact/decomp"
	"github.com/quotientgraph/pact/htdsolver"
	"github.com/quotientgraph/pact/tdecomp"
)

func TestAcquire_AcyclicUsesFastPath(t *testing.T) {
	p := path3Pattern()
	hg := decomp.PatternHypergraph(p)

	root, err := decomp.Acquire(context.Background(), p, hg, &htdsolver.Stub{}, decomp.DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, root)
}

func TestAcquire_CyclicFallsBackToSolver(t *testing.T) {
	p := triangle()
	hg := decomp.PatternHypergraph(p)

	stubRoot := tdecomp.New([]string{"a", "b", "c"}, map[string][]string{
		"E_0": {"a", "b"}, "E_1": {"b", "c"}, "E_2": {"c", "a"},
	})
	solver := &htdsolver.Stub{Node: stubRoot}

	root, err := decomp.Acquire(context.Background(), p, hg, solver, decomp.DefaultConfig())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, root.BagSlice())
}

func TestAcquire_AllAttemptsFail(t *testing.T) {
	p := triangle()
	hg := decomp.PatternHypergraph(p)

	solver := &htdsolver.Stub{Err: htdsolver.ErrSolverTimeout}
	_, err := decomp.Acquire(context.Background(), p, hg, solver, decomp.DefaultConfig())
	assert.ErrorIs(t, err, decomp.ErrNoDecomposition)
}
