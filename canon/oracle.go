// Package canon provides a canonical-form oracle abstraction used to test
// graph isomorphism and count automorphisms. PACT only ever canonicalizes
// pattern graphs and spasm basis graphs, both small (bounded by the
// pattern's vertex count), so an exact exponential-worst-case oracle is an
// acceptable default; any Oracle implementation may be substituted.
package canon

import (
	"math/big"

	"github.com/quotientgraph/pact/graph"
)

// Key is an opaque canonical-form fingerprint: two graphs are isomorphic
// iff their Keys are equal (for a correct Oracle implementation).
type Key string

// Oracle canonicalizes graphs and answers isomorphism/automorphism queries.
type Oracle interface {
	// Canon returns g's canonical-form key.
	Canon(g *graph.Graph) Key

	// AreIsomorphic reports whether a and b are isomorphic.
	AreIsomorphic(a, b *graph.Graph) bool

	// AutomorphismCount returns |Aut(g)|, the size of g's automorphism group.
	AutomorphismCount(g *graph.Graph) *big.Int
}
