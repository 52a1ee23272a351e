package plan

import (
	"math/big"

	"github.com/quotientgraph/pact/graph"
)

// StarShortcut reports whether p is an undirected star (one center, k
// leaves) and, if so, returns its center-degree k. The homomorphism count
// for such a pattern into host H is Σ_v deg_H(v)^k, bypassing plan
// execution entirely.
func StarShortcut(p *graph.Graph) (k int, ok bool) {
	if p.Directed() {
		return 0, false
	}
	shape := p.Shape()
	if !shape.IsStar {
		return 0, false
	}
	return shape.StarDegree, true
}

// CountViaStar computes Σ_v deg(v)^k over host h, the fast-path count for
// a k-leaf star pattern. Accumulated with math/big throughout (not int64)
// so a dense host with a high-degree center can't silently wrap around,
// matching the precision guarantee exec.Multiplicity gives the general
// plan executor.
func CountViaStar(h *graph.Graph, k int) *big.Int {
	total := new(big.Int)
	exp := big.NewInt(int64(k))
	for _, v := range h.Vertices() {
		term := new(big.Int).Exp(big.NewInt(int64(h.Degree(v))), exp, nil)
		total.Add(total, term)
	}
	return total
}

// VertexLabels returns g's vertex->labels map restricted to vertices that
// actually carry at least one label, suitable for WithLabels. A pattern
// with no labeled vertices at all yields an empty map, matching an
// unlabeled compile.
func VertexLabels(g *graph.Graph) map[string][]string {
	out := make(map[string][]string)
	for _, v := range g.Vertices() {
		if labels := g.Labels(v); len(labels) > 0 {
			out[v] = labels
		}
	}
	return out
}

// CliqueFilter reports whether p is an undirected clique on n >= 3
// vertices and, if so, returns n. When true, the host may be pre-filtered
// to vertices of degree >= n-1 before plan execution (vertices that could
// never participate in a clique embedding are dropped up front).
func CliqueFilter(p *graph.Graph) (n int, ok bool) {
	if p.Directed() {
		return 0, false
	}
	shape := p.Shape()
	if !shape.IsClique || shape.CliqueSize < 3 {
		return 0, false
	}
	return shape.CliqueSize, true
}

// PreFilterForClique returns the vertex IDs of h with degree >= n-1, the
// only vertices that can participate in an embedding of a clique on n
// vertices.
func PreFilterForClique(h *graph.Graph, n int) []string {
	var out []string
	for _, v := range h.Vertices() {
		if h.Degree(v) >= n-1 {
			out = append(out, v)
		}
	}
	return out
}
