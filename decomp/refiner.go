package decomp

import (
	"errors"
	"sort"

	"github.com/quotientgraph/pact/bfs"
	"github.com/quotientgraph/pact/graph"
	"github.com/quotientgraph/pact/tdecomp"
)

// ErrDisconnectedPattern is returned when the cover refiner is asked to
// operate over a pattern whose primal graph is disconnected: a malformed
// pattern, rejected before planning.
var ErrDisconnectedPattern = errors.New("decomp: pattern primal graph is disconnected")

// Refine rewrites every node of the decomposition rooted at n into a
// connected cover, via shortest-path augmentation in p's primal graph.
// Ported from balgowrapper.py's _connect_cover/_find_shortest_path_between_edges.
func Refine(p *graph.Graph, n *tdecomp.Node) error {
	if !p.IsConnected() {
		return ErrDisconnectedPattern
	}
	for _, node := range n.Nodes() {
		if err := refineNode(p, node); err != nil {
			return err
		}
	}
	return nil
}

func refineNode(p *graph.Graph, node *tdecomp.Node) error {
	if coverIsConnected(p, node) {
		node.SetConnectedCover(node.CoverMap)
		return nil
	}

	names := node.Cover()
	var pathEdges []string
	for i := 0; i+1 < len(names); i++ {
		e1 := node.CoverMap[names[i]]
		e2 := node.CoverMap[names[i+1]]
		path, err := shortestPathBetweenEdges(p, e1, e2)
		if err != nil {
			return err
		}
		for j := 0; j+1 < len(path); j++ {
			edgeName := edgeNameFor(node, p, path[j], path[j+1])
			pathEdges = append(pathEdges, edgeName)
		}
	}

	conCover := make(map[string][]string, len(node.CoverMap)+len(pathEdges))
	for k, v := range node.CoverMap {
		conCover[k] = v
	}
	for _, en := range pathEdges {
		if _, ok := conCover[en]; !ok {
			u, v := endpointsOf(en)
			conCover[en] = []string{u, v}
		}
	}
	node.SetConnectedCover(conCover)
	return nil
}

// edgeNameFor synthesizes a stable name for a path-augmentation edge (a,b):
// encoded directly as "a~b" since path edges don't carry one of the
// pattern's own hyperedge names at this point in decomposition. The plan
// compiler's RENAME step keys off the (u,v) pair, not this synthetic name.
func edgeNameFor(_ *tdecomp.Node, _ *graph.Graph, a, b string) string {
	return a + "~" + b
}

func endpointsOf(name string) (string, string) {
	for i := 0; i < len(name)-1; i++ {
		if name[i] == '~' {
			return name[:i], name[i+1:]
		}
	}
	return name, name
}

func coverIsConnected(p *graph.Graph, node *tdecomp.Node) bool {
	if len(node.CoverMap) == 0 {
		return true
	}
	edgeIDs := edgeIDsForCover(p, node)
	sub := p.EdgeInducedSubgraph(edgeIDs)
	return sub.IsConnected()
}

func edgeIDsForCover(p *graph.Graph, node *tdecomp.Node) []string {
	wanted := make(map[[2]string]struct{}, len(node.CoverMap))
	for _, members := range node.CoverMap {
		if len(members) != 2 {
			continue
		}
		wanted[[2]string{members[0], members[1]}] = struct{}{}
	}

	var out []string
	for _, e := range p.Edges() {
		if _, ok := wanted[[2]string{e.From, e.To}]; ok {
			out = append(out, e.ID)
			continue
		}
		if _, ok := wanted[[2]string{e.To, e.From}]; ok {
			out = append(out, e.ID)
		}
	}
	sort.Strings(out)
	return out
}

func shortestPathBetweenEdges(p *graph.Graph, e1, e2 []string) ([]string, error) {
	a, b := e1[0], e1[1]
	c, d := e2[0], e2[1]

	candidates := [][2]string{{a, c}, {b, c}, {a, d}, {b, d}}
	var shortest []string
	for _, cand := range candidates {
		path, err := shortestPath(p, cand[0], cand[1])
		if err != nil {
			continue
		}
		if shortest == nil || len(path) < len(shortest) {
			shortest = path
		}
	}
	if shortest == nil {
		return nil, ErrDisconnectedPattern
	}
	return shortest, nil
}

func shortestPath(p *graph.Graph, from, to string) ([]string, error) {
	if from == to {
		return []string{from}, nil
	}
	res, err := bfs.BFS(p, from)
	if err != nil {
		return nil, err
	}
	return res.PathTo(to)
}
