package grovetesting

import "github.com/asoffer/grove"

// TreeSpec is a declarative description of one tree: a value and the specs
// of its children. Compose with Leaf and Branch and realise with Build.
// TreeSpec sits entirely on top of the public construction surface; the
// buffer it produces is indistinguishable from one built by hand.
type TreeSpec[T any] struct {
	Value    T
	Children []TreeSpec[T]
}

// Leaf describes a childless tree.
func Leaf[T any](value T) TreeSpec[T] {
	return TreeSpec[T]{Value: value}
}

// Branch describes a tree whose root holds value and whose children are
// the given specs, left to right.
func Branch[T any](value T, children ...TreeSpec[T]) TreeSpec[T] {
	return TreeSpec[T]{Value: value, Children: children}
}

// Build realises the given tree descriptions, in order, as the root runs of
// a fresh buffer.
func Build[T any](trees ...TreeSpec[T]) (*grove.GroveBuf[T], error) {
	b := grove.New[T]().Builder()
	for _, spec := range trees {
		if err := buildTree(b, spec); err != nil {
			return nil, err
		}
	}
	return b.Finish()
}

func buildTree[T any](b *grove.Builder[T], spec TreeSpec[T]) error {
	if len(spec.Children) == 0 {
		b.Push(spec.Value)
		return nil
	}
	m := b.Open()
	for _, c := range spec.Children {
		if err := buildTree(b, c); err != nil {
			return err
		}
	}
	_, err := b.Close(spec.Value, m)
	return err
}
