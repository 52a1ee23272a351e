package graph

// EdgeInducedSubgraph returns a new undirected Graph containing exactly the
// vertices touched by edgeIDs and an edge for each of them. Used by the
// cover refiner (spec §4.D) to test connectedness of a cover's edge set in
// the primal graph.
func (g *Graph) EdgeInducedSubgraph(edgeIDs []string) *Graph {
	out := New()
	for _, eid := range edgeIDs {
		e, err := g.Edge(eid)
		if err != nil {
			continue
		}
		_ = out.AddVertex(e.From)
		_ = out.AddVertex(e.To)
		if !out.HasEdge(e.From, e.To) && !out.HasEdge(e.To, e.From) {
			_, _ = out.AddEdge(e.From, e.To)
		}
	}
	return out
}

// IsConnected reports whether g's underlying undirected shape is connected
// (weak connectivity for directed graphs). An empty graph is connected.
func (g *Graph) IsConnected() bool {
	ids := g.Vertices()
	if len(ids) <= 1 {
		return true
	}
	_, ok := bipartitionReachability(g, ids)
	return ok
}

// bipartitionReachability performs a BFS over the undirected shape of g and
// reports whether every vertex is reachable from ids[0].
func bipartitionReachability(g *Graph, ids []string) (map[string]bool, bool) {
	visited := make(map[string]bool, len(ids))
	queue := []string{ids[0]}
	visited[ids[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(cur) {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return visited, len(visited) == len(ids)
}
