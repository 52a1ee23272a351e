// Package hypergraph provides the hyperedges-as-sets view of a pattern's
// edge cover used by the decomposition acquirer (spec §4.B), ported from
// original_source/pact/pact/hypergraph.py's HyperGraph.
package hypergraph

import (
	"errors"
	"sort"

	"github.com/quotientgraph/pact/bfs"
	"github.com/quotientgraph/pact/graph"
)

// ErrEdgeNotFound indicates an operation referenced a missing hyperedge name.
var ErrEdgeNotFound = errors.New("hypergraph: edge not found")

// ErrEmptyEdge indicates AddEdge was called with an empty vertex set.
var ErrEmptyEdge = errors.New("hypergraph: edge has no vertices")

// Edge is a named hyperedge: an unordered vertex set.
type Edge map[string]struct{}

// Hypergraph is a set of named hyperedges over a shared vertex universe.
// It is append-oriented: edges are added once and rarely removed, mirroring
// the source's incremental tree-decomposition construction.
type Hypergraph struct {
	V     map[string]struct{}
	Edges map[string]Edge
}

// New returns an empty Hypergraph.
func New() *Hypergraph {
	return &Hypergraph{
		V:     make(map[string]struct{}),
		Edges: make(map[string]Edge),
	}
}

// AddEdge inserts a named hyperedge over the given vertex set, adding any
// new vertices to V. Complexity: O(|edge|).
func (h *Hypergraph) AddEdge(name string, vertices ...string) error {
	if len(vertices) == 0 {
		return ErrEmptyEdge
	}
	e := make(Edge, len(vertices))
	for _, v := range vertices {
		e[v] = struct{}{}
		h.V[v] = struct{}{}
	}
	h.Edges[name] = e
	return nil
}

// Edge returns the named hyperedge's vertex set.
func (h *Hypergraph) Edge(name string) (Edge, error) {
	e, ok := h.Edges[name]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	return e, nil
}

// EdgeNames returns all hyperedge names, sorted for deterministic iteration.
func (h *Hypergraph) EdgeNames() []string {
	out := make([]string, 0, len(h.Edges))
	for name := range h.Edges {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Degrees returns, for every vertex, the number of hyperedges it belongs to.
func (h *Hypergraph) Degrees() map[string]int {
	deg := make(map[string]int, len(h.V))
	for v := range h.V {
		deg[v] = 0
	}
	for _, e := range h.Edges {
		for v := range e {
			deg[v]++
		}
	}
	return deg
}

// RemoveEdge deletes a hyperedge by name. Vertices are left in V even if no
// remaining edge references them, matching the source's HyperGraph.remove_edge
// (which never prunes V).
func (h *Hypergraph) RemoveEdge(name string) error {
	if _, ok := h.Edges[name]; !ok {
		return ErrEdgeNotFound
	}
	delete(h.Edges, name)
	return nil
}

// VertexInducedSubg returns the hypergraph restricted to U: every hyperedge
// is intersected with U, and dropped entirely if the intersection is empty.
func (h *Hypergraph) VertexInducedSubg(u map[string]struct{}) *Hypergraph {
	out := New()
	for _, name := range h.EdgeNames() {
		members := make([]string, 0, len(h.Edges[name]))
		for v := range h.Edges[name] {
			if _, ok := u[v]; ok {
				members = append(members, v)
			}
		}
		if len(members) > 0 {
			_ = out.AddEdge(name, members...)
		}
	}
	return out
}

// Primal materializes the primal graph: one undirected vertex per element
// of V, one edge per pair of vertices co-occurring in some hyperedge
// (each hyperedge becomes a clique over its vertex set).
//
// Complexity: O(sum(|e|^2) over hyperedges e).
func (h *Hypergraph) Primal() *graph.Graph {
	g := graph.New()
	for v := range h.V {
		_ = g.AddVertex(v)
	}
	for _, name := range h.EdgeNames() {
		members := sortedMembers(h.Edges[name])
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				u, v := members[i], members[j]
				if !g.HasEdge(u, v) && !g.HasEdge(v, u) {
					_, _ = g.AddEdge(u, v)
				}
			}
		}
	}
	return g
}

// Separate computes the connected components of Primal() minus sep, each
// returned as the induced sub-hypergraph over (component ∪ sep) restricted
// to hyperedges not wholly contained in sep — ported from
// HyperGraph.separate/separation_subg.
//
// Complexity: O(V+E) for the BFS component search, plus O(edges) for the
// per-component edge filter.
func (h *Hypergraph) Separate(sep map[string]struct{}) ([]*Hypergraph, error) {
	primal := h.Primal()
	rest := make([]string, 0, len(h.V))
	for v := range h.V {
		if _, ok := sep[v]; !ok {
			rest = append(rest, v)
		}
	}
	sort.Strings(rest)

	visited := make(map[string]bool, len(rest))
	var comps [][]string
	for _, v := range rest {
		if visited[v] || isSeparator(v, sep) {
			continue
		}
		res, err := bfs.BFS(primal, v, bfs.WithFilterNeighbor(func(_, neighbor string) bool {
			_, excluded := sep[neighbor]
			return !excluded
		}))
		if err != nil {
			return nil, err
		}
		comp := make([]string, 0, len(res.Order))
		for _, id := range res.Order {
			if !visited[id] {
				visited[id] = true
				comp = append(comp, id)
			}
		}
		comps = append(comps, comp)
	}

	out := make([]*Hypergraph, 0, len(comps))
	for _, comp := range comps {
		out = append(out, h.separationSubg(comp, sep))
	}
	return out, nil
}

func isSeparator(v string, sep map[string]struct{}) bool {
	_, ok := sep[v]
	return ok
}

// separationSubg returns the hyperedges covered by (U ∪ sep) but not
// wholly inside sep, restricted to U's component plus the separator.
func (h *Hypergraph) separationSubg(comp []string, sep map[string]struct{}) *Hypergraph {
	cover := make(map[string]struct{}, len(comp)+len(sep))
	for _, v := range comp {
		cover[v] = struct{}{}
	}
	for v := range sep {
		cover[v] = struct{}{}
	}

	out := New()
	for _, name := range h.EdgeNames() {
		e := h.Edges[name]
		if subsetOf(e, cover) && !subsetOf(e, sep) {
			members := sortedMembers(e)
			_ = out.AddEdge(name, members...)
		}
	}
	return out
}

func subsetOf(e Edge, set map[string]struct{}) bool {
	for v := range e {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

func sortedMembers(e Edge) []string {
	out := make([]string, 0, len(e))
	for v := range e {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
