// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition: Wn = C_{n-1} + CenterVertexID, i.e. a cycle of size
// (n-1) plus a hub vertex. Hence n >= 4 (the outer ring must itself be a
// valid cycle: n-1 >= MinCycleNodes).
//
// Contract:
//   - n >= 4 (else ErrTooFewVertices).
//   - Builds the outer cycle using Cycle(n-1) with the same cfg.
//   - Adds hub vertex with fixed ID CenterVertexID.
//   - Emits spokes from Center to each cycle vertex in index order.
//     For directed graphs, also emits the reverse arc for symmetry.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges (undirected), O(2n) (directed).
//   - Space: O(1) extra.
package builder

import (
	"fmt"

	"github.com/quotientgraph/pact/graph"
)

// Wheel returns a Constructor that builds a wheel Wn = C_{n-1} + CenterVertexID.
func Wheel(n int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		if err := Cycle(n - 1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}

		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodWheel, CenterVertexID, err)
		}

		for i := 0; i < n-1; i++ {
			rimID := cfg.idFn(i)
			if _, err := g.AddEdge(CenterVertexID, rimID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s): %w", MethodWheel, CenterVertexID, rimID, err)
			}

			if g.Directed() {
				if _, err := g.AddEdge(rimID, CenterVertexID); err != nil {
					return fmt.Errorf("%s: AddEdge(%s->%s): %w", MethodWheel, rimID, CenterVertexID, err)
				}
			}
		}

		return nil
	}
}
