// Package bruteforce exhaustively counts graph homomorphisms by direct
// enumeration, for cross-checking the hypertree-decomposition/plan/exec
// pipeline's result on the small patterns and hosts used in tests. It is
// deliberately the simplest possible correct algorithm: recursive
// backtracking over every candidate assignment, pruned by the edges
// already fixed, with no decomposition or relational machinery.
package bruteforce

import (
	"sort"

	"github.com/quotientgraph/pact/graph"
)

// CountHomomorphisms returns the number of structure-preserving maps
// V(p) -> V(h): functions f such that for every edge (u,v) of p,
// (f(u),f(v)) is an edge of h. Exponential in |V(p)|; intended only for
// patterns with at most a handful of vertices.
func CountHomomorphisms(p, h *graph.Graph) int64 {
	pv := append([]string(nil), p.Vertices()...)
	sort.Strings(pv)
	hv := append([]string(nil), h.Vertices()...)
	sort.Strings(hv)

	edges := p.Edges()
	assignment := make(map[string]string, len(pv))

	var count int64
	var assign func(i int)
	assign = func(i int) {
		if i == len(pv) {
			count++
			return
		}
		for _, candidate := range hv {
			assignment[pv[i]] = candidate
			if consistent(h, edges, assignment, pv[i]) {
				assign(i + 1)
			}
			delete(assignment, pv[i])
		}
	}
	assign(0)
	return count
}

// consistent reports whether every pattern edge incident to the
// just-fixed vertex, whose other endpoint is also already assigned, maps
// to a real edge of h.
func consistent(h *graph.Graph, edges []*graph.Edge, assignment map[string]string, fixed string) bool {
	for _, e := range edges {
		if e.From != fixed && e.To != fixed {
			continue
		}
		fu, ok1 := assignment[e.From]
		fv, ok2 := assignment[e.To]
		if !ok1 || !ok2 {
			continue
		}
		if !h.HasEdge(fu, fv) {
			return false
		}
	}
	return true
}
