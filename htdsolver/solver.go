// Package htdsolver exposes the external balanced hypertree-decomposition
// solver as a capability interface, with a subprocess-backed reference
// implementation, ported from original_source/pact/pact/balgowrapper.py.
package htdsolver

import (
	"context"
	"errors"

	"github.com/quotientgraph/pact/hypergraph"
	"github.com/quotientgraph/pact/tdecomp"
)

// ErrSolverTimeout is returned when a single solver attempt exceeds its
// wall-clock budget. Not fatal on its own: the caller may retry or fall
// back to another attempt.
var ErrSolverTimeout = errors.New("htdsolver: attempt timed out")

// ErrSolverProtocol is returned when a hyperedge is not binary, the solver
// process fails, or its reply is not a JSON line with a Root. The returned
// decomposition is not checked against tree-decomposition invariants.
var ErrSolverProtocol = errors.New("htdsolver: malformed solver reply")

// Solver obtains one raw hypertree decomposition for a hypergraph. A raw
// decomposition carries bags and covers but no connected cover; refinement
// is a separate step (package decomp).
type Solver interface {
	Decompose(ctx context.Context, hg *hypergraph.Hypergraph) (*tdecomp.Node, error)
}
