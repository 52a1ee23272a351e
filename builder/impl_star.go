// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID CenterVertexID.
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes in stable order Center -> leaf[i]. For directed graphs,
//     also emits leaf[i] -> Center to preserve spoke symmetry.
//   - Honors graph.Directed() without silent degrade.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges (undirected) or O(2n-2) (directed).
//   - Space: O(1) extra.
package builder

import (
	"fmt"

	"github.com/quotientgraph/pact/graph"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub CenterVertexID and n-1 leaves.
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, CenterVertexID, err)
		}

		for i := 1; i < n; i++ {
			leafID := cfg.idFn(i)
			if err := g.AddVertex(leafID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, leafID, err)
			}

			if _, err := g.AddEdge(CenterVertexID, leafID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s): %w", MethodStar, CenterVertexID, leafID, err)
			}

			if g.Directed() {
				if _, err := g.AddEdge(leafID, CenterVertexID); err != nil {
					return fmt.Errorf("%s: AddEdge(%s->%s): %w", MethodStar, leafID, CenterVertexID, err)
				}
			}
		}

		return nil
	}
}
