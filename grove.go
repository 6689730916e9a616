package grove

import (
	"fmt"
	"slices"
)

// Grove is a stateless, read-only interpretation of a contiguous record
// span as a sequence of zero or more trees. A view derives all navigation
// from record position and subtree size alone; it holds no mutable state
// and never touches storage.
//
// A view may cover a whole buffer (GroveBuf.View) or the descendant span of
// any single node (Tree.Grove). Node indices are relative to the view they
// were obtained from.
type Grove[T any] struct {
	nodes []node[T]
}

// Len returns the number of node records in the view.
func (v Grove[T]) Len() int {
	return len(v.nodes)
}

// IsEmpty reports whether the view contains no trees.
func (v Grove[T]) IsEmpty() bool {
	return len(v.nodes) == 0
}

// ValueAt returns the value stored at node index i.
func (v Grove[T]) ValueAt(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.nodes[i].value, nil
}

// SubtreeSizeAt returns the number of nodes in the subtree rooted at index
// i, the node itself included.
func (v Grove[T]) SubtreeSizeAt(i int) (int, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, err
	}
	return v.nodes[i].size, nil
}

// RootCount returns the number of trees in the view, found by repeated
// backward subtraction of subtree sizes from the tail boundary. Costs one
// step per tree, independent of how many nodes each tree holds.
func (v Grove[T]) RootCount() int {
	count := 0
	for end := len(v.nodes); end > 0; end -= v.nodes[end-1].size {
		count++
	}
	return count
}

// RootFromEnd returns the index of the root of the n-th tree counting
// backward from the end of the view; n = 0 is the last tree. ErrNoSuchRoot
// is returned when n is not less than RootCount.
func (v Grove[T]) RootFromEnd(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: ordinal %d", ErrNoSuchRoot, n)
	}
	skipped := 0
	for end := len(v.nodes); end > 0; end -= v.nodes[end-1].size {
		if skipped == n {
			return end - 1, nil
		}
		skipped++
	}
	return 0, fmt.Errorf("%w: ordinal %d, root count %d", ErrNoSuchRoot, n, skipped)
}

// Roots returns the root index of every tree in forward, first-tree-first
// order. The size of a run is recorded at its last record, so a forward
// walk cannot find the next boundary directly; the boundaries are collected
// by the backward-skip walk and reversed.
func (v Grove[T]) Roots() []int {
	var roots []int
	for end := len(v.nodes); end > 0; end -= v.nodes[end-1].size {
		roots = append(roots, end-1)
	}
	slices.Reverse(roots)
	return roots
}

// TreeAt returns the tree rooted at node index i. Any node of the view may
// be used, not just top-level roots; the result spans the node and all of
// its descendants.
func (v Grove[T]) TreeAt(i int) (Tree[T], error) {
	if err := v.checkIndex(i); err != nil {
		return Tree[T]{}, err
	}
	return Tree[T]{view: v, root: i}, nil
}

// ChildrenOf returns an iterator over the direct children of the node at
// index i, rightmost child first. Bounds are checked here, at construction;
// a leaf yields an immediately exhausted iterator.
func (v Grove[T]) ChildrenOf(i int) (*ChildIterator[T], error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	s := v.nodes[i].size
	return &ChildIterator[T]{view: v, lo: i + 1 - s, end: i}, nil
}

// DescendantsOf returns an iterator over every strict descendant of the
// node at index i, in storage order. Bounds are checked here, at
// construction; a leaf yields an immediately exhausted iterator.
func (v Grove[T]) DescendantsOf(i int) (*NodeIterator[T], error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	s := v.nodes[i].size
	return &NodeIterator[T]{view: v, cur: i - s, hi: i}, nil
}

// Nodes returns an iterator over every record in the view in storage order,
// children before parents at every nesting level.
func (v Grove[T]) Nodes() *NodeIterator[T] {
	return &NodeIterator[T]{view: v, cur: -1, hi: len(v.nodes)}
}

// NodesReverse returns an iterator over every record in the view in reverse
// storage order, parents before children, last tree first.
func (v Grove[T]) NodesReverse() *ReverseNodeIterator[T] {
	return &ReverseNodeIterator[T]{view: v, cur: len(v.nodes)}
}

func (v Grove[T]) checkIndex(i int) error {
	if i < 0 || i >= len(v.nodes) {
		return fmt.Errorf("%w: index %d, span length %d", ErrIndexOutOfRange, i, len(v.nodes))
	}
	return nil
}

// sizes returns the subtree size of every record in storage order. Test
// support.
func (v Grove[T]) sizes() []int {
	out := make([]int, len(v.nodes))
	for i := range v.nodes {
		out[i] = v.nodes[i].size
	}
	return out
}
