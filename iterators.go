package grove

// The iterators are lazy, single-pass index sequences over a view. Next
// advances and reports whether a record is available; the accessors are
// valid after Next returns true and until the next call. Exhaustion is not
// an error. Iterators are not restartable; construct a fresh one from the
// view to traverse again. Bounds are checked when the iterator is
// constructed, never mid-traversal.

// RootIterator yields the root of every tree in a view, last tree first.
//
// Backward-skip is the primitive step: a run's length is recorded at its
// root, the last record of the run, so the walk can only proceed from the
// tail boundary toward the front. Forward order is derived from this one;
// see Grove.Roots.
type RootIterator[T any] struct {
	view Grove[T]
	end  int // tail boundary of the unvisited prefix
	cur  int
}

// RootsFromEnd returns an iterator over the view's tree roots in reverse
// storage order.
func (v Grove[T]) RootsFromEnd() *RootIterator[T] {
	return &RootIterator[T]{view: v, end: len(v.nodes), cur: -1}
}

// Next advances to the previous root. It returns false once every tree has
// been yielded.
func (it *RootIterator[T]) Next() bool {
	if it.end == 0 {
		return false
	}
	it.cur = it.end - 1
	it.end -= it.view.nodes[it.cur].size
	return true
}

// Index returns the node index of the current root.
func (it *RootIterator[T]) Index() int { return it.cur }

// Value returns the value stored at the current root.
func (it *RootIterator[T]) Value() T { return it.view.nodes[it.cur].value }

// Tree returns the current tree.
func (it *RootIterator[T]) Tree() Tree[T] { return Tree[T]{view: it.view, root: it.cur} }

// ChildIterator yields the direct children of one node, rightmost child
// first, by the backward-skip walk restricted to the node's descendant
// span. One step per child, regardless of the child subtree sizes.
type ChildIterator[T any] struct {
	view Grove[T]
	lo   int // start of the children span
	end  int // tail boundary of the unvisited children
	cur  int
}

// Next advances to the previous child. It returns false once every child
// has been yielded; a leaf's iterator is exhausted from the start.
func (it *ChildIterator[T]) Next() bool {
	if it.end <= it.lo {
		return false
	}
	it.cur = it.end - 1
	it.end -= it.view.nodes[it.cur].size
	return true
}

// Index returns the node index of the current child.
func (it *ChildIterator[T]) Index() int { return it.cur }

// Value returns the value stored at the current child.
func (it *ChildIterator[T]) Value() T { return it.view.nodes[it.cur].value }

// SubtreeSize returns the subtree size of the current child.
func (it *ChildIterator[T]) SubtreeSize() int { return it.view.nodes[it.cur].size }

// Tree returns the subtree rooted at the current child.
func (it *ChildIterator[T]) Tree() Tree[T] { return Tree[T]{view: it.view, root: it.cur} }

// NodeIterator is a forward linear scan over a record span in storage
// order. Over a descendant span this yields children before parents at
// every nesting level: a fold over the sequence has, by the time it reaches
// any record, already folded all of that record's descendants, which is the
// order wanted for bottom-up aggregation.
type NodeIterator[T any] struct {
	view Grove[T]
	cur  int
	hi   int // exclusive end of the span
}

// Next advances to the following record. It returns false once the span is
// exhausted.
func (it *NodeIterator[T]) Next() bool {
	it.cur++
	return it.cur < it.hi
}

// Index returns the node index of the current record.
func (it *NodeIterator[T]) Index() int { return it.cur }

// Value returns the value stored at the current record.
func (it *NodeIterator[T]) Value() T { return it.view.nodes[it.cur].value }

// SubtreeSize returns the subtree size of the current record.
func (it *NodeIterator[T]) SubtreeSize() int { return it.view.nodes[it.cur].size }

// Tree returns the subtree rooted at the current record. Iterating a whole
// view this way enumerates every subtree of the grove, not just the
// top-level trees.
func (it *NodeIterator[T]) Tree() Tree[T] { return Tree[T]{view: it.view, root: it.cur} }

// ReverseNodeIterator is a backward linear scan over a view, visiting every
// record in reverse storage order: parents before children, last tree
// first.
type ReverseNodeIterator[T any] struct {
	view Grove[T]
	cur  int
}

// Next advances to the preceding record. It returns false once the front of
// the view is reached.
func (it *ReverseNodeIterator[T]) Next() bool {
	it.cur--
	return it.cur >= 0
}

// Index returns the node index of the current record.
func (it *ReverseNodeIterator[T]) Index() int { return it.cur }

// Value returns the value stored at the current record.
func (it *ReverseNodeIterator[T]) Value() T { return it.view.nodes[it.cur].value }

// SubtreeSize returns the subtree size of the current record.
func (it *ReverseNodeIterator[T]) SubtreeSize() int { return it.view.nodes[it.cur].size }
