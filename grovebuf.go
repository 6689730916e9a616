package grove

import "fmt"

// GroveBuf owns an append-only sequence of node records encoding zero or
// more trees. All nodes live in a single backing slice; the buffer is the
// only mutation surface, and every operation on it strictly extends the
// record sequence. Indices returned by any operation remain valid for the
// life of the buffer.
//
// The zero value is an empty grove ready for use.
type GroveBuf[T any] struct {
	nodes []node[T]
}

// New constructs a GroveBuf containing no trees.
func New[T any]() *GroveBuf[T] {
	return &GroveBuf[T]{}
}

// Len returns the number of node records in the buffer.
func (g *GroveBuf[T]) Len() int {
	return len(g.nodes)
}

// IsEmpty reports whether the buffer contains no trees.
func (g *GroveBuf[T]) IsEmpty() bool {
	return len(g.nodes) == 0
}

// PushLeaf appends a childless node and returns its index.
func (g *GroveBuf[T]) PushLeaf(value T) int {
	g.nodes = append(g.nodes, node[T]{value: value, size: 1})
	return len(g.nodes) - 1
}

// PushRoot appends a node that adopts, as its children, the last `children`
// completed trees in the buffer. The walk back over the runs being adopted
// costs one step per child. Returns the index of the new root.
//
// ErrNotEnoughRoots is returned, and nothing is written, if the buffer
// holds fewer completed trees than requested.
func (g *GroveBuf[T]) PushRoot(value T, children int) (int, error) {
	start := len(g.nodes)
	for adopted := 0; adopted < children; adopted++ {
		if start == 0 {
			return 0, fmt.Errorf(
				"%w: %d available, %d requested", ErrNotEnoughRoots, adopted, children)
		}
		start -= g.nodes[start-1].size
	}
	g.nodes = append(g.nodes, node[T]{value: value, size: len(g.nodes) - start + 1})
	return len(g.nodes) - 1, nil
}

// AppendGrove copies every record of v onto the end of the buffer,
// concatenating its trees as additional root runs. The records are already
// in children-before-parent order, so the copy is a single bulk append.
// Returns the half-open index range [lo, hi) the copied records occupy.
func (g *GroveBuf[T]) AppendGrove(v Grove[T]) (lo, hi int) {
	lo = len(g.nodes)
	g.nodes = append(g.nodes, v.nodes...)
	return lo, len(g.nodes)
}

// AppendTree copies a single tree onto the end of the buffer and returns
// the index of its root.
func (g *GroveBuf[T]) AppendTree(t Tree[T]) int {
	s := t.view.nodes[t.root].size
	g.nodes = append(g.nodes, t.view.nodes[t.root+1-s:t.root+1]...)
	return len(g.nodes) - 1
}

// View returns a read-only view over the records currently in the buffer.
// Later appends never renumber existing records, so the view stays valid,
// but records appended after the view is taken are not visible through it.
func (g *GroveBuf[T]) View() Grove[T] {
	return Grove[T]{nodes: g.nodes}
}
