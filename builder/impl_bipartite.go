// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   - n1 >= 1 and n2 >= 1 (else ErrTooFewVertices).
//   - Adds left partition IDs as "{leftPrefix}{i}", i=0..n1-1.
//   - Adds right partition IDs as "{rightPrefix}{j}", j=0..n2-1.
//   - Emits every cross-pair L_i -> R_j; mirrors R_j -> L_i only if
//     g.Directed().
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n1 + n2) vertices + O(n1*n2) edges.
//   - Space: O(n1 + n2) extra for ID slices.
package builder

import (
	"fmt"

	"github.com/quotientgraph/pact/graph"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		lp, rp := cfg.leftPrefix, cfg.rightPrefix

		leftIDs := make([]string, n1)
		for i := 0; i < n1; i++ {
			id := fmt.Sprintf("%s%d", lp, i)
			leftIDs[i] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodCompleteBipartite, id, err)
			}
		}

		rightIDs := make([]string, n2)
		for j := 0; j < n2; j++ {
			id := fmt.Sprintf("%s%d", rp, j)
			rightIDs[j] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodCompleteBipartite, id, err)
			}
		}

		for i := 0; i < n1; i++ {
			u := leftIDs[i]
			for j := 0; j < n2; j++ {
				v := rightIDs[j]
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s->%s): %w", MethodCompleteBipartite, u, v, err)
				}
				if g.Directed() {
					if _, err := g.AddEdge(v, u); err != nil {
						return fmt.Errorf("%s: AddEdge(%s->%s): %w", MethodCompleteBipartite, v, u, err)
					}
				}
			}
		}

		return nil
	}
}
