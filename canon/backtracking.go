// backtracking.go implements Oracle via exhaustive vertex-bijection search,
// grounded on the teacher's adjacency-driven core.Graph traversal style
// (graph.Graph.Neighbors/HasEdge) and on the degree-multiset pre-filter from
// the original Python's faster_could_be_isomorphic.
package canon

import (
	"math/big"
	"strings"

	"github.com/quotientgraph/pact/graph"
)

// Backtracking is the reference Oracle: a degree-sequence fast filter gates
// a full backtracking search over vertex permutations. Exponential in the
// worst case, acceptable for PACT's small pattern/basis graphs.
type Backtracking struct{}

// NewBacktracking returns the reference Oracle implementation.
func NewBacktracking() *Backtracking { return &Backtracking{} }

// Canon returns the lexicographically smallest adjacency-signature over all
// vertex orderings, i.e. a true canonical form for graphs this small.
//
// Complexity: O(n! * n^2) worst case; n is the pattern/basis vertex count.
func (b *Backtracking) Canon(g *graph.Graph) Key {
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return Key("")
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := ""
	first := true
	permute(perm, 0, func(p []int) {
		sig := signature(g, ids, p)
		if first || sig < best {
			best = sig
			first = false
		}
	})

	return Key(best)
}

// AreIsomorphic reports whether a and b are isomorphic. A vertex-count or
// degree-multiset mismatch rejects immediately (the "could-be-isomorphic"
// fast filter); otherwise the two canonical keys are compared.
func (b *Backtracking) AreIsomorphic(a, c *graph.Graph) bool {
	if len(a.Vertices()) != len(c.Vertices()) {
		return false
	}
	da, db := a.DegreeSequence(), c.DegreeSequence()
	for i := range da {
		if da[i] != db[i] {
			return false
		}
	}

	return b.Canon(a) == b.Canon(c)
}

// AutomorphismCount returns |Aut(g)|: the number of vertex permutations
// whose induced relabeling reproduces g's own adjacency exactly, i.e. the
// number of orderings achieving the canonical minimal signature.
//
// Complexity: O(n! * n^2) worst case.
func (b *Backtracking) AutomorphismCount(g *graph.Graph) *big.Int {
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return big.NewInt(1)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := ""
	first := true
	count := int64(0)
	permute(perm, 0, func(p []int) {
		sig := signature(g, ids, p)
		switch {
		case first || sig < best:
			best = sig
			first = false
			count = 1
		case sig == best:
			count++
		}
	})

	return big.NewInt(count)
}

// signature encodes g's adjacency under the relabeling ids[perm[0]],
// ids[perm[1]], ... as a stable string: one bit per ordered (or, for
// undirected graphs, upper-triangular) vertex pair.
func signature(g *graph.Graph, ids []string, perm []int) string {
	n := len(perm)
	var sb strings.Builder
	sb.Grow(n * n)

	for i := 0; i < n; i++ {
		start := 0
		if !g.Directed() {
			start = i + 1
		}
		for j := start; j < n; j++ {
			if i == j {
				continue
			}
			u, v := ids[perm[i]], ids[perm[j]]
			if g.HasEdge(u, v) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}

// permute invokes fn once per permutation of perm, via a simple recursive
// swap (no in-place optimization needed at PACT's small n).
func permute(perm []int, k int, fn func([]int)) {
	if k == len(perm) {
		cp := append([]int(nil), perm...)
		fn(cp)
		return
	}
	for i := k; i < len(perm); i++ {
		perm[k], perm[i] = perm[i], perm[k]
		permute(perm, k+1, fn)
		perm[k], perm[i] = perm[i], perm[k]
	}
}
