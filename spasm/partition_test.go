package spasm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quotientgraph/pact/spasm"
)

func collectPartitions(vertices []string) [][][]string {
	var out [][][]string
	for rho := range spasm.Partitions(vertices) {
		out = append(out, rho)
	}
	return out
}

// TestPartitions_BellNumbers checks the enumerator's output count against
// the Bell numbers for small n (1, 1, 2, 5, 15).
func TestPartitions_BellNumbers(t *testing.T) {
	cases := []struct {
		n    int
		bell int
	}{
		{0, 0}, // Partitions(nil) yields nothing; BasisCoefficients never calls it on an empty vertex set.
		{1, 1},
		{2, 2},
		{3, 5},
		{4, 15},
	}
	for _, c := range cases {
		vertices := make([]string, c.n)
		for i := range vertices {
			vertices[i] = string(rune('a' + i))
		}
		got := collectPartitions(vertices)
		assert.Len(t, got, c.bell)
	}
}

// TestPartitions_CoverEveryElementExactlyOnce asserts each yielded
// partition is a genuine partition: every vertex appears in exactly one
// block.
func TestPartitions_CoverEveryElementExactlyOnce(t *testing.T) {
	vertices := []string{"a", "b", "c", "d"}
	for rho := range spasm.Partitions(vertices) {
		seen := make(map[string]int)
		for _, block := range rho {
			for _, v := range block {
				seen[v]++
			}
		}
		for _, v := range vertices {
			assert.Equal(t, 1, seen[v], "vertex %s", v)
		}
		assert.Len(t, seen, len(vertices))
	}
}
