package graph

import (
	"sort"
	"strconv"
)

func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

func removeAdjacency(g *Graph, e *Edge) {
	if m, ok := g.adjacency[e.From][e.To]; ok {
		delete(m, e.ID)
	}
	if !g.directed {
		if m, ok := g.adjacency[e.To][e.From]; ok {
			delete(m, e.ID)
		}
	}
}

// AddEdge adds an edge from -> to. Both endpoints are created via AddVertex
// if missing. Self-loops are always rejected (ErrLoopNotAllowed): PACT hosts
// and basis graphs are assumed loop-free (spec §3). Returns the new edge ID.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if m, ok := g.adjacency[from][to]; ok && len(m) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
		if !g.directed {
			if m, ok := g.adjacency[to][from]; ok && len(m) > 0 {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	e := &Edge{ID: eid, From: from, To: to}
	g.edges[eid] = e

	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if !g.directed {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether any edge connects from -> to (respecting
// directedness; undirected graphs also match to -> from).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if m, ok := g.adjacency[from][to]; ok && len(m) > 0 {
		return true
	}
	return false
}

// Edge returns the edge record for eid, or ErrEdgeNotFound.
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	return e, nil
}

// Edges returns all edges sorted by ID for deterministic iteration.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}
