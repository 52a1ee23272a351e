package spasm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/quotientgraph/pact/canon"
	"github.com/quotientgraph/pact/graph"
)

// ExpandPolicy controls what BasisCoefficients does when a quotient graph
// has no isomorphic match in the spasm space.
type ExpandPolicy int

const (
	// ForbidExpand fails with ErrBasisIncomplete on any unmatched quotient.
	ForbidExpand ExpandPolicy = iota
	// AllowExpand inserts the unmatched quotient into the space under a
	// fresh id and continues, growing the basis as a side effect.
	AllowExpand
)

// ErrBasisIncomplete is returned by BasisCoefficients under ForbidExpand
// when some quotient of g has no isomorphic match in the space.
var ErrBasisIncomplete = errors.New("spasm: basis incomplete for quotient graph")

// Coefficients maps a basis graph id to its spasm coefficient for the
// graph BasisCoefficients was called on.
type Coefficients map[ID]*big.Rat

// BasisCoefficients computes the spasm coefficient of every basis graph
// appearing as a quotient of g under some vertex partition, ported from
// hombase.py's hombase_coeffs. skipBidirected discards any partition whose
// quotient (for a directed g) contains a bidirected edge pair: the host is
// assumed bidirected-free, so such a quotient can only ever contribute a
// zero homomorphism count.
func BasisCoefficients(ctx context.Context, g *graph.Graph, sp *Space, policy ExpandPolicy, skipBidirected bool) (Coefficients, error) {
	oracle := sp.Oracle()
	if oracle == nil {
		return nil, fmt.Errorf("spasm: BasisCoefficients requires a Space with an oracle set")
	}

	edges := g.Edges()
	partitionBase := make(map[ID]*big.Int)

	for rho := range Partitions(g.Vertices()) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if loopInPartition(edges, rho) {
			continue
		}

		quot := quotientGraph(g, rho)
		if skipBidirected && quot.Directed() && hasBidirectedEdge(quot) {
			continue
		}

		id, ok, err := matchOrInsert(quot, sp, oracle, policy)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: partition %v", ErrBasisIncomplete, rho)
		}

		cur, exists := partitionBase[id]
		if !exists {
			cur = big.NewInt(0)
		}
		partitionBase[id] = new(big.Int).Add(cur, partitionProduct(rho))
	}

	autos := oracle.AutomorphismCount(g)
	out := make(Coefficients, len(partitionBase))
	for id, base := range partitionBase {
		f, ok := sp.Get(id)
		if !ok {
			return nil, fmt.Errorf("spasm: basis graph %s vanished from space", id)
		}
		out[id] = calcCoeff(g, f, base, autos)
	}
	return out, nil
}

// matchOrInsert looks up quot in sp by (|E|,|V|) then exact isomorphism;
// under AllowExpand an unmatched quot is inserted and reported as a match.
func matchOrInsert(quot *graph.Graph, sp *Space, oracle canon.Oracle, policy ExpandPolicy) (ID, bool, error) {
	for _, id := range sp.IterByEV(quot.EdgeCount(), quot.VertexCount()) {
		f, ok := sp.Get(id)
		if !ok {
			continue
		}
		if oracle.AreIsomorphic(quot, f) {
			return id, true, nil
		}
	}
	if policy == AllowExpand {
		return sp.Add(quot), true, nil
	}
	return "", false, nil
}

// loopInPartition reports whether some edge of g has both endpoints inside
// the same block of rho: such a partition's quotient would carry a
// self-loop, which the host is assumed never to produce.
func loopInPartition(edges []*graph.Edge, rho [][]string) bool {
	idx := blockIndexMap(rho)
	for _, e := range edges {
		if idx[e.From] == idx[e.To] {
			return true
		}
	}
	return false
}

func blockIndexMap(rho [][]string) map[string]int {
	m := make(map[string]int, len(rho))
	for i, block := range rho {
		for _, v := range block {
			m[v] = i
		}
	}
	return m
}

func blockName(i int) string { return "B" + strconv.Itoa(i) }

// quotientGraph contracts each block of rho to a single vertex, keeping
// one edge per distinct (block, block) pair that an original edge of g
// crosses (nx.quotient_graph collapses parallel cross-block edges the
// same way).
func quotientGraph(g *graph.Graph, rho [][]string) *graph.Graph {
	idx := blockIndexMap(rho)
	q := graph.New(graph.WithDirected(g.Directed()))
	for i := range rho {
		_ = q.AddVertex(blockName(i))
	}
	for _, e := range g.Edges() {
		bf, bt := idx[e.From], idx[e.To]
		if bf == bt {
			continue
		}
		u, v := blockName(bf), blockName(bt)
		if q.HasEdge(u, v) {
			continue
		}
		_, _ = q.AddEdge(u, v)
	}
	return q
}

func hasBidirectedEdge(quot *graph.Graph) bool {
	for _, e := range quot.Edges() {
		if quot.HasEdge(e.To, e.From) {
			return true
		}
	}
	return false
}

// partitionProduct is Π_{B in rho} (|B|-1)!, the number of distinct
// automorphisms of the complete graph on each block that collapse it to a
// single quotient vertex.
func partitionProduct(rho [][]string) *big.Int {
	p := big.NewInt(1)
	for _, block := range rho {
		p.Mul(p, factorial(len(block)-1))
	}
	return p
}

func factorial(n int) *big.Int {
	f := big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		f.Mul(f, big.NewInt(i))
	}
	return f
}

// calcCoeff is (-1)^(|V(g)|-|V(f)|) * base / autos.
func calcCoeff(g, f *graph.Graph, base, autos *big.Int) *big.Rat {
	vdiff := len(g.Vertices()) - len(f.Vertices())
	signed := new(big.Int).Set(base)
	if vdiff%2 != 0 {
		signed.Neg(signed)
	}
	return new(big.Rat).SetFrac(signed, autos)
}
