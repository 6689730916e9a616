package grove

// node is the atomic stored record: the caller's value and the count of
// records in the subtree rooted at this node, itself included.
//
// size is always at least 1, and for any stored node equals 1 plus the sum
// of the sizes of its direct children. For a node at index p the records of
// its strict descendants therefore occupy exactly [p-s+1, p). That one
// invariant is the whole basis for navigation.
type node[T any] struct {
	value T
	size  int
}
