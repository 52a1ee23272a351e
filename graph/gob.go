package graph

import (
	"bytes"
	"encoding/gob"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// gobSnapshot is the serializable projection of a Graph: internal mutexes
// and the cached Shape (a recomputable fast-path cache, spec §3) are never
// persisted.
type gobSnapshot struct {
	ID         uuid.UUID
	Directed   bool
	AllowMulti bool
	Vertices   []*Vertex
	Edges      []*Edge
}

// GobEncode implements gob.GobEncoder: persists vertices/edges/directedness
// only, matching the "strip transient caches before persist" rule (spec §6)
// applied to the graph itself, not just spasm.Space/decomp state.
func (g *Graph) GobEncode() ([]byte, error) {
	g.muVert.RLock()
	g.muEdgeAdj.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdgeAdj.RUnlock()

	snap := gobSnapshot{ID: g.id, Directed: g.directed, AllowMulti: g.allowMulti}
	for _, v := range g.vertices {
		snap.Vertices = append(snap.Vertices, v)
	}
	for _, e := range g.edges {
		snap.Edges = append(snap.Edges, e)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder, rebuilding adjacency and shape from
// the persisted vertex/edge lists.
func (g *Graph) GobDecode(data []byte) error {
	var snap gobSnapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return err
	}

	g.id = snap.ID
	g.directed = snap.Directed
	g.allowMulti = snap.AllowMulti
	g.vertices = make(map[string]*Vertex, len(snap.Vertices))
	g.edges = make(map[string]*Edge, len(snap.Edges))
	g.adjacency = make(map[string]map[string]map[string]struct{})

	for _, v := range snap.Vertices {
		g.vertices[v.ID] = v
	}
	var maxEdgeNum uint64
	for _, e := range snap.Edges {
		g.edges[e.ID] = e
		ensureAdjacency(g, e.From, e.To)
		g.adjacency[e.From][e.To][e.ID] = struct{}{}
		if !g.directed {
			ensureAdjacency(g, e.To, e.From)
			g.adjacency[e.To][e.From][e.ID] = struct{}{}
		}
		if n, err := parseEdgeNum(e.ID); err == nil && n > maxEdgeNum {
			maxEdgeNum = n
		}
	}
	g.nextEdgeID = maxEdgeNum

	g.RecomputeShape()
	return nil
}

func parseEdgeNum(eid string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(eid, "e"), 10, 64)
}
