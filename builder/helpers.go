// helpers.go provides shared helper functions used by impl_*.go shape
// constructors.
//
// Design principles:
//   - Single responsibility: each helper does one well-defined job.
//   - Error context: wrap errors with fmt.Errorf and %w for uniform reporting.
//   - Readability: explicit naming, minimal nesting, consistent style.
package builder

import (
	"fmt"

	"github.com/quotientgraph/pact/graph"
)

// addVerticesWithIDFn adds vertices idFn(0..n-1) to g.
//
// Complexity: O(n) time, O(1) extra space.
func addVerticesWithIDFn(g *graph.Graph, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		vid := idFn(i)
		if err := g.AddVertex(vid); err != nil {
			return err
		}
	}
	return nil
}

// makeIDs generates n vertex IDs via idFn(0..n-1).
// Example: makeIDs(DefaultIDFn, 3) → {"0","1","2"}.
//
// Complexity: O(n) time and space.
func makeIDs(idFn IDFn, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
	}
	return ids
}

// addCompleteEdges connects every unordered pair in ids with an edge.
// For directed graphs, mirrors each edge in the opposite direction.
//
// Complexity: O(m²) time where m = len(ids), O(1) extra space.
func addCompleteEdges(g *graph.Graph, ids []string) error {
	for i := 0; i < len(ids); i++ {
		u := ids[i]
		for j := i + 1; j < len(ids); j++ {
			v := ids[j]
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("addCompleteEdges: AddEdge(%s->%s): %w", u, v, err)
			}
			if g.Directed() {
				if _, err := g.AddEdge(v, u); err != nil {
					return fmt.Errorf("addCompleteEdges: AddEdge(%s->%s): %w", v, u, err)
				}
			}
		}
	}
	return nil
}
