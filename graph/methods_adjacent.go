package graph

import "sort"

// Neighbors returns the IDs reachable from id via an outgoing edge (or, for
// undirected graphs, via any incident edge), sorted for determinism.
func (g *Graph) Neighbors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	seen := make(map[string]struct{})
	for to, m := range g.adjacency[id] {
		if len(m) > 0 {
			seen[to] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// NeighborIDs returns Neighbors(id), or ErrVertexNotFound if id is absent.
// Kept distinct from Neighbors for callers (bfs, dfs) that want a uniform
// error-returning traversal primitive across graph adapters.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	return g.Neighbors(id), nil
}

// Degree returns the number of incident edges at id. For undirected graphs
// this counts each incident edge once; for directed graphs it is out-degree
// plus in-degree.
func (g *Graph) Degree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := 0
	for _, m := range g.adjacency[id] {
		n += len(m)
	}
	if g.directed {
		for from, tos := range g.adjacency {
			if from == id {
				continue
			}
			if m, ok := tos[id]; ok {
				n += len(m)
			}
		}
	}
	return n
}

// DegreeSequence returns the sorted (ascending) multiset of vertex degrees,
// used by the canonical oracle's cheap "could-be-isomorphic" filter.
func (g *Graph) DegreeSequence() []int {
	ids := g.Vertices()
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.Degree(id))
	}
	sort.Ints(out)
	return out
}
