package grove

// Tree is a read-only view of a single tree: one node, addressed within the
// view it was obtained from, together with the span of its descendants.
type Tree[T any] struct {
	view Grove[T]
	root int
}

// Root returns the value stored at the root of the tree.
func (t Tree[T]) Root() T {
	return t.view.nodes[t.root].value
}

// RootIndex returns the index of the root within the view the tree was
// obtained from.
func (t Tree[T]) RootIndex() int {
	return t.root
}

// Len returns the number of nodes in the tree, the root included.
func (t Tree[T]) Len() int {
	return t.view.nodes[t.root].size
}

// Children returns an iterator over the direct children of the root,
// rightmost child first.
func (t Tree[T]) Children() *ChildIterator[T] {
	return &ChildIterator[T]{view: t.view, lo: t.root + 1 - t.Len(), end: t.root}
}

// Descendants returns an iterator over every strict descendant of the root
// in storage order.
func (t Tree[T]) Descendants() *NodeIterator[T] {
	return &NodeIterator[T]{view: t.view, cur: t.root - t.Len(), hi: t.root}
}

// Grove returns the root's descendant span as a view in its own right. The
// top-level trees of the returned view are the root's children, so the
// whole navigation surface recurses through it. Indices in the returned
// view are relative to the span, not to the originating view.
func (t Tree[T]) Grove() Grove[T] {
	return Grove[T]{nodes: t.view.nodes[t.root+1-t.Len() : t.root]}
}

// Values returns the values of the tree in storage order, the root last.
func (t Tree[T]) Values() []T {
	lo := t.root + 1 - t.Len()
	out := make([]T, 0, t.Len())
	for i := lo; i <= t.root; i++ {
		out = append(out, t.view.nodes[i].value)
	}
	return out
}
