// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j} with i<j exactly once, mirrored to
//     j->i only if g.Directed().
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n^2) edges.
//   - Space: O(n) extra for the precomputed ID slice.
package builder

import (
	"fmt"

	"github.com/quotientgraph/pact/graph"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		ids := makeIDs(cfg.idFn, n)
		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodComplete, err)
		}

		if err := addCompleteEdges(g, ids); err != nil {
			return fmt.Errorf("%s: %w", MethodComplete, err)
		}

		return nil
	}
}
