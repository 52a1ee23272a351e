package decomp

import (
	"errors"
	"sort"

	"github.com/quotientgraph/pact/hypergraph"
	"github.com/quotientgraph/pact/tdecomp"
)

// ErrCyclicHypergraph is returned by the GYO reduction when a non-empty
// fixpoint is reached: the pattern's primal graph is cyclic and the
// acyclic fast path does not apply.
var ErrCyclicHypergraph = errors.New("decomp: GYO fixpoint non-empty, hypergraph is cyclic")

// ErrEmptyHypergraph is returned when GYOJoinTree is asked to decompose a
// pattern with no hyperedges at all.
var ErrEmptyHypergraph = errors.New("decomp: hypergraph has no edges")

// joinTreeEdge is a (child, parent) hyperedge-name pair recorded by the GYO
// reduction, mirroring greedy_shallower_jt's accumulator.
type joinTreeEdge struct {
	child, parent string
}

// GYOJoinTree attempts the acyclic fast path: repeatedly strip
// degree-<=1 vertices, then absorb every hyperedge that is a subset of
// another, recursing until the hypergraph is empty. Ported from
// jointree.py's greedy_shallower_jt/get_jt.
func GYOJoinTree(hg *hypergraph.Hypergraph) (*tdecomp.Node, error) {
	ecmap := edgeConversionMap(hg)

	if len(hg.Edges) == 0 {
		return nil, ErrEmptyHypergraph
	}
	if len(hg.Edges) == 1 {
		return singletonNode(hg, ecmap), nil
	}

	edges, err := greedyShallowerJT(hg)
	if err != nil {
		return nil, err
	}
	return treeFromRels(edges, ecmap), nil
}

func singletonNode(hg *hypergraph.Hypergraph, ecmap map[string][]string) *tdecomp.Node {
	en := hg.EdgeNames()[0]
	coverMap := map[string][]string{en: ecmap[en]}
	n := tdecomp.New(ecmap[en], coverMap)
	n.SetConnectedCover(coverMap)
	return n
}

func edgeConversionMap(hg *hypergraph.Hypergraph) map[string][]string {
	out := make(map[string][]string, len(hg.Edges))
	for _, name := range hg.EdgeNames() {
		e, _ := hg.Edge(name)
		members := make([]string, 0, len(e))
		for v := range e {
			members = append(members, v)
		}
		sort.Strings(members)
		out[name] = members
	}
	return out
}

func boringVertices(hg *hypergraph.Hypergraph) map[string]struct{} {
	out := make(map[string]struct{})
	for v, deg := range hg.Degrees() {
		if deg <= 1 {
			out[v] = struct{}{}
		}
	}
	return out
}

// subsetRel is a (smaller, larger) pair where edge[smaller] ⊆ edge[larger].
type subsetRel struct {
	en, fn string
}

func buildSubedgesList(hg *hypergraph.Hypergraph) []subsetRel {
	var out []subsetRel
	names := hg.EdgeNames()
	for _, en := range names {
		e, _ := hg.Edge(en)
		for _, fn := range names {
			if fn == en {
				continue
			}
			f, _ := hg.Edge(fn)
			if isSubset(e, f) {
				out = append(out, subsetRel{en, fn})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].en != out[j].en {
			return out[i].en < out[j].en
		}
		return out[i].fn < out[j].fn
	})
	return out
}

func isSubset(e, f hypergraph.Edge) bool {
	for v := range e {
		if _, ok := f[v]; !ok {
			return false
		}
	}
	return true
}

func greedyShallowerJT(origHG *hypergraph.Hypergraph) ([]joinTreeEdge, error) {
	if len(origHG.Edges) == 0 || len(origHG.Edges) == 1 {
		return nil, nil
	}

	toDel := boringVertices(origHG)
	leftover := make(map[string]struct{}, len(origHG.V))
	for v := range origHG.V {
		if _, gone := toDel[v]; !gone {
			leftover[v] = struct{}{}
		}
	}
	hg := origHG.VertexInducedSubg(leftover)

	subedges := buildSubedgesList(hg)
	removed := make(map[string]struct{})
	var jt []joinTreeEdge

	for _, rel := range subedges {
		if _, gone := removed[rel.en]; gone {
			continue
		}
		if _, gone := removed[rel.fn]; gone {
			continue
		}

		_ = hg.RemoveEdge(rel.en)
		jt = append(jt, joinTreeEdge{rel.en, rel.fn})
		removed[rel.en] = struct{}{}

		for _, rel2 := range subedges {
			if _, gone := removed[rel2.en]; gone {
				continue
			}
			if rel2.fn != rel.fn {
				continue
			}
			_ = hg.RemoveEdge(rel2.en)
			jt = append(jt, joinTreeEdge{rel2.en, rel.fn})
			removed[rel2.en] = struct{}{}
		}
	}

	if len(toDel) == 0 && len(removed) == 0 {
		return nil, ErrCyclicHypergraph
	}

	rest, err := greedyShallowerJT(hg)
	if err != nil {
		return nil, err
	}
	return append(jt, rest...), nil
}

func treeFromRels(rels []joinTreeEdge, ecmap map[string][]string) *tdecomp.Node {
	nodes := make(map[string]*tdecomp.Node)
	nodeOf := func(en string) *tdecomp.Node {
		if n, ok := nodes[en]; ok {
			return n
		}
		n := tdecomp.New(ecmap[en], map[string][]string{en: ecmap[en]})
		nodes[en] = n
		return n
	}

	asChild := make(map[string]int)
	for _, rel := range rels {
		ch, p := nodeOf(rel.child), nodeOf(rel.parent)
		p.Children = append(p.Children, ch)
		asChild[rel.child]++
		if _, ok := asChild[rel.parent]; !ok {
			asChild[rel.parent] = 0
		}
	}

	for _, n := range nodes {
		n.SetConnectedCover(n.CoverMap)
	}

	rootName := ""
	best := -1
	names := make([]string, 0, len(asChild))
	for name := range asChild {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if best == -1 || asChild[name] < best {
			best = asChild[name]
			rootName = name
		}
	}

	return nodes[rootName]
}
