package exec_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotientgraph/pact/exec"
	"github.com/quotientgraph/pact/plan"
)

// symmetricEdges builds the seeded host edge relation for an undirected
// host given its directed edge list: each (u,v) contributes both (u,v)
// and (v,u), count 1.
func symmetricEdges(pairs [][2]string) *exec.Relation {
	rel := exec.NewRelation([]string{"s", "t"})
	for _, p := range pairs {
		rel.Tuples = append(rel.Tuples, exec.Tuple{"s": p[0], "t": p[1]})
		rel.Counts = append(rel.Counts, exec.SmallMult(1))
		rel.Tuples = append(rel.Tuples, exec.Tuple{"s": p[1], "t": p[0]})
		rel.Counts = append(rel.Counts, exec.SmallMult(1))
	}
	return rel
}

func sumCounts(r *exec.Relation) int64 {
	var total int64
	for _, c := range r.Counts {
		total += c.Int64()
	}
	return total
}

// TestRun_K2IntoP3 counts homomorphisms of K2 (single edge a-b) into the
// path 1-2-3 (undirected); a single RENAME/COUNT_EXT-free node suffices
// since the pattern has one edge and the node relation is the renamed
// edge relation directly.
func TestRun_K2IntoP3(t *testing.T) {
	host := symmetricEdges([][2]string{{"1", "2"}, {"2", "3"}})

	ops := []plan.Op{
		{Kind: plan.Rename, NewName: "node$0", A: plan.BaseRelName, Rename: map[string]string{"s": "a", "t": "b"}},
	}

	root, err := exec.Run(context.Background(), ops, host, nil, exec.DefaultExecConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(4), sumCounts(root))
}

// TestRun_P3IntoK3 counts homomorphisms of the path a-b-c into K3
// (triangle 1-2-3): join the two edge relations on b, project to {a,b,c}.
func TestRun_P3IntoK3(t *testing.T) {
	host := symmetricEdges([][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}})

	ops := []plan.Op{
		{Kind: plan.Rename, NewName: "E_0", A: plan.BaseRelName, Rename: map[string]string{"s": "a", "t": "b"}},
		{Kind: plan.Rename, NewName: "E_1", A: plan.BaseRelName, Rename: map[string]string{"s": "b", "t": "c"}},
		{Kind: plan.Join, NewName: "node$0", A: "E_0", B: "E_1", Key: []string{"b"}},
		{Kind: plan.Project, NewName: "node$0", A: "node$0", Key: []string{"a", "b", "c"}},
	}

	root, err := exec.Run(context.Background(), ops, host, nil, exec.DefaultExecConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(12), sumCounts(root))
}

func TestRun_EmptyRelationShortCircuits(t *testing.T) {
	host := exec.NewRelation([]string{"s", "t"})

	ops := []plan.Op{
		{Kind: plan.Rename, NewName: "node$0", A: plan.BaseRelName, Rename: map[string]string{"s": "a", "t": "b"}},
	}

	root, err := exec.Run(context.Background(), ops, host, nil, exec.DefaultExecConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, root.Len())
}

func TestSumMultiplicities_PromotesOnOverflow(t *testing.T) {
	huge := exec.SmallMult(1 << 62)
	sum, err := exec.SumMultiplicities([]exec.Multiplicity{huge, huge}, true)
	require.NoError(t, err)
	assert.True(t, sum.IsBig())
}

func TestSumMultiplicities_ErrorsWhenNotGraceful(t *testing.T) {
	huge := exec.SmallMult(1 << 62)
	_, err := exec.SumMultiplicities([]exec.Multiplicity{huge, huge}, false)
	assert.ErrorIs(t, err, exec.ErrIntegerOverflow)
}
