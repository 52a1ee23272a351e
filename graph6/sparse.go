package graph6

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/quotientgraph/pact/graph"
)

// sparse6K is the bit width of a vertex number in the sparse6 edge
// bitstream: the smallest k with 2^k >= n.
func sparse6K(n int) int {
	k := 1
	for (1 << uint(k)) < n {
		k++
	}
	return k
}

// DecodeSparse6 parses the sparse6 format: a ':' marker, N(n), then an edge
// bitstream of (flag, k-bit value) chunks. Per chunk: v increments by the
// flag bit, then a value exceeding the new v is a pure resync (v jumps to
// that value, no edge), otherwise the chunk encodes edge (value, v). This
// makes the decoder naturally robust to the 1-bit byte-alignment padding
// appended by the encoder: padding either resyncs past n (discarded) or
// decodes as a harmless out-of-range edge, both rejected below.
func DecodeSparse6(s string) (*graph.Graph, error) {
	s = strings.TrimRight(s, "\r\n")
	if !strings.HasPrefix(s, ":") {
		return nil, fmt.Errorf("%w: sparse6 input must start with ':'", ErrDecoding)
	}
	data := []byte(s[1:])
	n, consumed, err := decodeN(data)
	if err != nil {
		return nil, err
	}
	body := data[consumed:]
	k := sparse6K(n)

	g := graph.New()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(vertexName(i))
	}

	r := newBitReader(body)
	v := 0
	for r.remainingBits() >= k+1 {
		b, err := r.readBit()
		if err != nil {
			break
		}
		x, err := r.readBits(k)
		if err != nil {
			break
		}
		if b {
			v++
		}
		if x > v {
			v = x
			continue
		}
		if v >= n || x >= n {
			continue
		}
		if _, err := g.AddEdge(vertexName(x), vertexName(v)); err != nil && !errors.Is(err, graph.ErrMultiEdgeNotAllowed) {
			return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
		}
	}
	g.RecomputeShape()
	return g, nil
}

// EncodeSparse6 renders an undirected, loop-free graph in the sparse6
// format. Edges are visited in (max-endpoint, min-endpoint) order and
// encoded against a running reference vertex curv, emitting a two-chunk
// resync when an edge's max endpoint jumps more than one past curv.
func EncodeSparse6(g *graph.Graph) (string, error) {
	if g.Directed() {
		return "", fmt.Errorf("%w: sparse6 encodes undirected graphs only", ErrDecoding)
	}
	ids, idx := sortedIndex(g)
	n := len(ids)
	k := sparse6K(n)

	type pair struct{ v, u int }
	var edges []pair
	for _, e := range g.Edges() {
		a, b := idx[e.From], idx[e.To]
		if a < b {
			a, b = b, a
		}
		edges = append(edges, pair{v: a, u: b})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].v != edges[j].v {
			return edges[i].v < edges[j].v
		}
		return edges[i].u < edges[j].u
	})

	w := &bitWriter{}
	curv := 0
	for _, e := range edges {
		switch {
		case e.v == curv:
			w.writeBit(false)
			w.writeBits(e.u, k)
		case e.v == curv+1:
			curv = e.v
			w.writeBit(true)
			w.writeBits(e.u, k)
		default:
			curv = e.v
			w.writeBit(true)
			w.writeBits(e.v, k)
			w.writeBit(false)
			w.writeBits(e.u, k)
		}
	}
	// For n = 2^k (k < 6), one-bit padding after a last v below n-1 could
	// decode as the loop (n-1, n-1); a leading 0 bit makes it a resync.
	if k < 6 && n == 1<<uint(k) && (6-len(w.bits)%6)%6 >= k && curv < n-1 {
		w.writeBit(false)
	}
	w.padToByteWithOnes()

	nbytes := encodeN(n)
	if nbytes == nil {
		return "", fmt.Errorf("%w: graph too large for sparse6 (n=%d)", ErrDecoding, n)
	}
	return ":" + string(nbytes) + string(w.pack()), nil
}
