package tdecomp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quotientgraph/pact/tdecomp"
)

func TestWidthGHWDepth_Leaf(t *testing.T) {
	n := tdecomp.New([]string{"a", "b"}, map[string][]string{"E0": {"a", "b"}})
	n.SetConnectedCover(n.CoverMap)

	assert.Equal(t, 1, n.Width())
	assert.Equal(t, 1, n.GHW())
	assert.Equal(t, 1, n.Depth())
	assert.True(t, n.IsLeaf())
}

func TestWidthGHWDepth_Tree(t *testing.T) {
	root := tdecomp.New([]string{"a", "b", "c"}, map[string][]string{
		"E0": {"a", "b"}, "E1": {"b", "c"},
	})
	child := tdecomp.New([]string{"c", "d"}, map[string][]string{"E2": {"c", "d"}})
	root.Children = append(root.Children, child)

	assert.Equal(t, 2, root.Width())
	assert.Equal(t, 2, root.GHW())
	assert.Equal(t, 2, root.Depth())
	assert.Equal(t, []string{"a", "b", "c"}, root.BagSlice())
}

func TestPreOrder(t *testing.T) {
	root := tdecomp.New([]string{"a"}, nil)
	c1 := tdecomp.New([]string{"b"}, nil)
	c2 := tdecomp.New([]string{"c"}, nil)
	root.Children = []*tdecomp.Node{c1, c2}

	order := root.PreOrder()
	assert.Equal(t, []*tdecomp.Node{root, c1, c2}, order)
}
