package bruteforce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quotientgraph/pact/graph"
	"github.com/quotientgraph/pact/internal/bruteforce"
)

func path(vertices ...string) *graph.Graph {
	g := graph.New()
	for i := 0; i+1 < len(vertices); i++ {
		_, _ = g.AddEdge(vertices[i], vertices[i+1])
	}
	return g
}

func cycle(vertices ...string) *graph.Graph {
	g := path(vertices...)
	_, _ = g.AddEdge(vertices[len(vertices)-1], vertices[0])
	return g
}

// TestCountHomomorphisms_K2IntoP3 matches spec scenario 1: a single edge
// mapped into the 3-vertex path has 4 homomorphisms.
func TestCountHomomorphisms_K2IntoP3(t *testing.T) {
	k2 := path("a", "b")
	p3 := path("1", "2", "3")
	assert.Equal(t, int64(4), bruteforce.CountHomomorphisms(k2, p3))
}

// TestCountHomomorphisms_P3IntoK3 matches spec scenario 2.
func TestCountHomomorphisms_P3IntoK3(t *testing.T) {
	p3 := path("a", "b", "c")
	k3 := cycle("1", "2", "3")
	assert.Equal(t, int64(12), bruteforce.CountHomomorphisms(p3, k3))
}

// TestCountHomomorphisms_C4IntoK4 matches spec scenario 5.
func TestCountHomomorphisms_C4IntoK4(t *testing.T) {
	c4 := cycle("a", "b", "c", "d")
	k4 := graph.New()
	vs := []string{"1", "2", "3", "4"}
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			_, _ = k4.AddEdge(vs[i], vs[j])
		}
	}
	// hom(C4, K4) = trace(A(K4)^4): K4's adjacency eigenvalues are 3 (once)
	// and -1 (three times), giving 3^4 + 3*(-1)^4 = 84.
	assert.Equal(t, int64(84), bruteforce.CountHomomorphisms(c4, k4))
}
