package htdsolver

import (
	"context"

	"github.com/quotientgraph/pact/hypergraph"
	"github.com/quotientgraph/pact/tdecomp"
)

// Stub is a test double satisfying Solver: it returns a fixed decomposition
// (or error) regardless of input, letting the engine be tested without the
// external binary.
type Stub struct {
	Node *tdecomp.Node
	Err  error
}

// Decompose returns s.Node or s.Err, ignoring hg and ctx.
func (s *Stub) Decompose(_ context.Context, _ *hypergraph.Hypergraph) (*tdecomp.Node, error) {
	return s.Node, s.Err
}
