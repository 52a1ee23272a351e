package graph

import "sort"

// RecomputeShape derives the Shape fast-path flags from the current vertex
// and edge sets. It is ported from the source GraphWrapper's
// _is_nx_star/_is_Knm/_is_cycle/clique checks (original_source/pact/pact/graphwrapper.py):
// these are cache hints for plan fast paths (spec §4.E), never a substitute
// for full correctness checks elsewhere.
func (g *Graph) RecomputeShape() {
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		g.shape = Shape{}
		return
	}

	degs := make([]int, n)
	for i, id := range ids {
		degs[i] = g.Degree(id)
	}
	sortedDegs := append([]int(nil), degs...)
	sort.Ints(sortedDegs)

	var sh Shape

	// Star: exactly one vertex of high degree, all others degree 1.
	if n >= 2 && sortedDegs[n-2] == 1 && sortedDegs[n-1] == n-1 {
		sh.IsStar = true
		sh.StarDegree = sortedDegs[n-1]
	}

	// Cycle: every vertex has degree exactly 2.
	if n >= 3 && sortedDegs[0] == 2 && sortedDegs[n-1] == 2 {
		sh.IsCycle = true
	}

	// Clique: simple complete graph on n vertices.
	edgeCount := g.EdgeCount()
	if !g.directed && n >= 1 && edgeCount == n*(n-1)/2 {
		sh.IsClique = true
		sh.CliqueSize = n
	}

	// Small complete bipartite K_{a,b}, a,b <= 3 (spec's "is-small-complete-bipartite").
	if a, b, ok := isSmallBiclique(g, ids); ok {
		sh.IsBiclique = true
		sh.BicliqueN, sh.BicliqueM = a, b
	}

	g.shape = sh
}

func isSmallBiclique(g *Graph, ids []string) (int, int, bool) {
	color, ok := bipartitionOf(g, ids)
	if !ok {
		return 0, 0, false
	}
	var left, right []string
	for _, id := range ids {
		if color[id] {
			left = append(left, id)
		} else {
			right = append(right, id)
		}
	}
	a, b := len(left), len(right)
	if a == 0 || b == 0 || a > 3 || b > 3 {
		return 0, 0, false
	}
	if g.EdgeCount() != a*b {
		return 0, 0, false
	}
	for _, l := range left {
		for _, r := range right {
			if !g.HasEdge(l, r) && !g.HasEdge(r, l) {
				return 0, 0, false
			}
		}
	}
	return a, b, true
}

// bipartitionOf attempts a 2-coloring of g's underlying undirected shape via
// BFS; returns ok=false if g is not bipartite or is disconnected.
func bipartitionOf(g *Graph, ids []string) (map[string]bool, bool) {
	if len(ids) == 0 {
		return nil, false
	}
	color := make(map[string]bool, len(ids))
	queue := []string{ids[0]}
	color[ids[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(cur) {
			if _, seen := color[nb]; !seen {
				color[nb] = !color[cur]
				queue = append(queue, nb)
			} else if color[nb] == color[cur] {
				return nil, false
			}
		}
	}
	if len(color) != len(ids) {
		return nil, false // disconnected
	}
	return color, true
}
