package graph6

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/quotientgraph/pact/graph"
)

// DecodeDirected parses the internal whitespace-separated directed format
// "nv ne u0 v0 u1 v1 ...", mirroring GraphWrapper.from_g6str's directed
// branch (nv/ne followed by ne edge pairs, as plain decimal integers).
func DecodeDirected(s string) (*graph.Graph, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: directed format requires nv and ne", ErrDecoding)
	}
	nv, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad nv: %v", ErrDecoding, err)
	}
	ne, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad ne: %v", ErrDecoding, err)
	}
	if len(fields) != 2+2*ne {
		return nil, fmt.Errorf("%w: expected %d edge endpoints, got %d", ErrDecoding, 2*ne, len(fields)-2)
	}

	g := graph.New(graph.WithDirected(true))
	for i := 0; i < nv; i++ {
		_ = g.AddVertex(vertexName(i))
	}
	for i := 0; i < ne; i++ {
		u, err := strconv.Atoi(fields[2+2*i])
		if err != nil {
			return nil, fmt.Errorf("%w: bad endpoint: %v", ErrDecoding, err)
		}
		v, err := strconv.Atoi(fields[2+2*i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad endpoint: %v", ErrDecoding, err)
		}
		if _, err := g.AddEdge(vertexName(u), vertexName(v)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
		}
	}
	g.RecomputeShape()
	return g, nil
}

// EncodeDirected renders a directed graph in the internal
// "nv ne u0 v0 u1 v1 ..." format.
func EncodeDirected(g *graph.Graph) (string, error) {
	if !g.Directed() {
		return "", fmt.Errorf("%w: directed format encodes directed graphs only", ErrDecoding)
	}
	ids := g.Vertices()
	sort.Strings(ids)
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	edges := g.Edges()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d", len(ids), len(edges))
	for _, e := range edges {
		fmt.Fprintf(&sb, " %d %d", idx[e.From], idx[e.To])
	}
	return sb.String(), nil
}
