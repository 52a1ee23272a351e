// Package tdecomp provides the tree-decomposition node model consumed by
// the decomposition acquirer and plan compiler, ported from
// original_source/pact/pact/treedecomp.py.
package tdecomp

import "sort"

// Node is one bag of a rooted tree decomposition. Bag, Cover and ConCover
// are set-backed but exposed/iterated in sorted order for determinism.
type Node struct {
	Bag      map[string]struct{}
	CoverMap map[string][]string // edge name -> incident pattern vertices
	ConCover map[string][]string // edge name -> incident pattern vertices, superset of CoverMap
	Children []*Node
}

// New returns a leaf node with the given bag and edge cover.
func New(bag []string, coverMap map[string][]string) *Node {
	b := make(map[string]struct{}, len(bag))
	for _, v := range bag {
		b[v] = struct{}{}
	}
	return &Node{Bag: b, CoverMap: coverMap}
}

// SetConnectedCover installs n's connected cover, computed by the refiner.
func (n *Node) SetConnectedCover(conCover map[string][]string) {
	n.ConCover = conCover
}

// BagSlice returns n.Bag as a sorted slice.
func (n *Node) BagSlice() []string {
	out := make([]string, 0, len(n.Bag))
	for v := range n.Bag {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Cover returns the cover's edge names, sorted.
func (n *Node) Cover() []string {
	return sortedKeys(n.CoverMap)
}

// ConCoverNames returns the connected cover's edge names, sorted.
func (n *Node) ConCoverNames() []string {
	return sortedKeys(n.ConCover)
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Width is the tree-width contribution of this subtree: max(|bag|-1).
func (n *Node) Width() int {
	w := len(n.Bag) - 1
	for _, c := range n.Children {
		if cw := c.Width(); cw > w {
			w = cw
		}
	}
	return w
}

// GHW is the generalized-hypertree-width of this subtree: max(|cover|).
func (n *Node) GHW() int {
	w := len(n.CoverMap)
	for _, c := range n.Children {
		if cw := c.GHW(); cw > w {
			w = cw
		}
	}
	return w
}

// Depth is the subtree's height: 1 for a leaf.
func (n *Node) Depth() int {
	d := 0
	for _, c := range n.Children {
		if cd := c.Depth(); cd > d {
			d = cd
		}
	}
	return 1 + d
}

// Nodes iterates the subtree in breadth-first order.
func (n *Node) Nodes() []*Node {
	var out []*Node
	queue := []*Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)
		queue = append(queue, cur.Children...)
	}
	return out
}

// PreOrder iterates the subtree in pre-order (parent before children, left
// to right), matching the plan compiler's node-naming rule.
func (n *Node) PreOrder() []*Node {
	out := []*Node{n}
	for _, c := range n.Children {
		out = append(out, c.PreOrder()...)
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
