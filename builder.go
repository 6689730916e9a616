package grove

import "fmt"

// Marker identifies the start boundary of a subtree under construction.
// Markers are issued by Open and redeemed, deepest first, by Close or
// Abandon. A Marker is pure bookkeeping; issuing one writes nothing.
type Marker struct {
	start int // buffer length at the time of the Open
	depth int // position of the frame in the builder's open stack
}

// Builder drives append-only construction of a GroveBuf. It keeps an
// explicit stack of open start markers, one frame per subtree whose
// children have been pushed but whose root is not yet written.
//
// Nesting is expressed by pairing Open with Close: everything pushed
// between the two becomes a child of the value supplied to Close. Frames
// must be closed deepest first; closing a frame that is not the deepest
// open one is rejected before anything is written, since accepting it would
// record a wrong subtree size and silently break navigation for the whole
// ancestor chain.
type Builder[T any] struct {
	g    *GroveBuf[T]
	open []int // start boundaries of open subtrees, outermost first
}

// Builder returns a builder appending to g. A buffer must be driven by one
// builder at a time.
func (g *GroveBuf[T]) Builder() *Builder[T] {
	return &Builder[T]{g: g}
}

// Push appends a leaf at the current depth and returns its index.
func (b *Builder[T]) Push(value T) int {
	return b.g.PushLeaf(value)
}

// Open begins a subtree. Records pushed from here until the matching Close
// become children of the value supplied to that Close.
func (b *Builder[T]) Open() Marker {
	m := Marker{start: b.g.Len(), depth: len(b.open)}
	b.open = append(b.open, m.start)
	return m
}

// Close seals the subtree begun by the matching Open, writing its root
// record, and returns the root's index. The records pushed since the Open
// become the root's children.
//
// ErrSealOutOfOrder is returned if m is not the deepest open subtree, and
// ErrMarkerInvalid if m does not correspond to an Open on this builder.
func (b *Builder[T]) Close(value T, m Marker) (int, error) {
	if err := b.checkDeepest(m); err != nil {
		return 0, err
	}
	b.open = b.open[:len(b.open)-1]
	b.g.nodes = append(b.g.nodes, node[T]{value: value, size: b.g.Len() - m.start + 1})
	return b.g.Len() - 1, nil
}

// Abandon discards the subtree begun by the matching Open without writing a
// root record. The records pushed since the Open were complete subtrees
// already and remain in the buffer, promoted to the enclosing depth.
func (b *Builder[T]) Abandon(m Marker) error {
	if err := b.checkDeepest(m); err != nil {
		return err
	}
	b.open = b.open[:len(b.open)-1]
	return nil
}

// Depth returns the number of currently open subtrees.
func (b *Builder[T]) Depth() int {
	return len(b.open)
}

// Finish returns the underlying buffer. ErrUnsealedFrames is returned if
// any subtree is still open; each must be sealed with Close or discarded
// with Abandon first.
func (b *Builder[T]) Finish() (*GroveBuf[T], error) {
	if len(b.open) != 0 {
		return nil, fmt.Errorf("%w: %d still open", ErrUnsealedFrames, len(b.open))
	}
	return b.g, nil
}

func (b *Builder[T]) checkDeepest(m Marker) error {
	if m.start > b.g.Len() {
		return fmt.Errorf(
			"%w: marker start %d beyond buffer length %d", ErrMarkerInvalid, m.start, b.g.Len())
	}
	if len(b.open) == 0 {
		return fmt.Errorf("%w: no subtree is open", ErrSealOutOfOrder)
	}
	top := len(b.open) - 1
	if m.depth != top || b.open[top] != m.start {
		return fmt.Errorf(
			"%w: marker is at depth %d, deepest open subtree is at depth %d",
			ErrSealOutOfOrder, m.depth, top)
	}
	return nil
}
