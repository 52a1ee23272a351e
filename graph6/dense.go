package graph6

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/quotientgraph/pact/graph"
)

// encodeN renders a vertex count as graph6/sparse6's N(n): a single biased
// byte for n<=62, or a 126 marker followed by three 6-bit biased bytes for
// 63<=n<=258047. Larger graphs use a 36-bit extension this package does
// not implement.
func encodeN(n int) []byte {
	if n <= 62 {
		return []byte{byte(n + 63)}
	}
	if n <= 258047 {
		return []byte{
			126,
			byte((n>>12)&0x3f) + 63,
			byte((n>>6)&0x3f) + 63,
			byte(n&0x3f) + 63,
		}
	}
	return nil
}

func decodeN(data []byte) (n, consumed int, err error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("%w: empty input", ErrDecoding)
	}
	if data[0] == 126 {
		if len(data) < 4 {
			return 0, 0, fmt.Errorf("%w: truncated N(n)", ErrDecoding)
		}
		n = int(data[1]-63)<<12 | int(data[2]-63)<<6 | int(data[3]-63)
		return n, 4, nil
	}
	return int(data[0] - 63), 1, nil
}

func vertexName(i int) string { return strconv.Itoa(i) }

// sortedIndex returns g's vertices sorted into a stable 0..n-1 order.
func sortedIndex(g *graph.Graph) ([]string, map[string]int) {
	ids := g.Vertices()
	sort.Strings(ids)
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	return ids, idx
}

// DecodeGraph6 parses the dense graph6 format: N(n) followed by the
// upper-triangle adjacency bits in column order ((0,1),(0,2),(1,2),(0,3)...).
func DecodeGraph6(s string) (*graph.Graph, error) {
	data := []byte(strings.TrimRight(s, "\r\n"))
	n, consumed, err := decodeN(data)
	if err != nil {
		return nil, err
	}
	body := data[consumed:]

	g := graph.New()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(vertexName(i))
	}

	r := newBitReader(body)
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			bit, err := r.readBit()
			if err != nil {
				return nil, fmt.Errorf("%w: short adjacency bitstream", ErrDecoding)
			}
			if bit {
				if _, err := g.AddEdge(vertexName(i), vertexName(j)); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
				}
			}
		}
	}
	g.RecomputeShape()
	return g, nil
}

// EncodeGraph6 renders an undirected, loop-free graph in the dense graph6
// format.
func EncodeGraph6(g *graph.Graph) (string, error) {
	if g.Directed() {
		return "", fmt.Errorf("%w: graph6 encodes undirected graphs only", ErrDecoding)
	}
	ids, _ := sortedIndex(g)
	n := len(ids)

	nbytes := encodeN(n)
	if nbytes == nil {
		return "", fmt.Errorf("%w: graph too large for graph6 (n=%d)", ErrDecoding, n)
	}

	w := &bitWriter{}
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			w.writeBit(g.HasEdge(ids[i], ids[j]))
		}
	}
	return string(nbytes) + string(w.pack()), nil
}
