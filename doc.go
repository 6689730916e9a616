package grove

/*

Package grove stores an ordered sequence of rooted, ordered trees (a "grove")
inside one contiguous, pointer-free buffer.

Every node is a flat record holding the caller's value and the size of the
subtree rooted at that node, itself included. Children are stored before
their parent, left to right, so a parent is always the last record of its
subtree's span. That is the entire representation: there are no child or
parent pointers and no per-node allocations. All relationships are
recovered by index arithmetic over the record sequence.

Given the grove

	[[red, yellow, blue] => primary color, [left, right] => direction]

the buffer holds seven records:

	index:  0     1       2     3              4     5      6
	value:  red   yellow  blue  primary color  left  right  direction
	size:   1     1       1     4              1     1      3

# Navigation

For a node at index p with subtree size s, the records of its strict
descendants occupy exactly [p-s+1, p). Its direct children are found by
walking that span backward: the child nearest p is the record at p-1, whose
own size says how far to jump to reach the next child, and so on until the
span is exhausted. The same backward-skip step applied to the whole buffer
enumerates the root of every tree, last tree first:

	end = len(buffer)
	while end > 0:
	    root = end - 1
	    end -= size(root)

Each step is O(1) and enumerating a node's children costs one step per
child, independent of how large the child subtrees are. Because the subtree
size is recorded at the parent, which closes its run, the backward walk is
the primitive; forward (first tree first) orders are derived by collecting
the run boundaries and replaying them.

A forward scan of any subtree span visits children before parents at every
nesting level. By the time such a scan reaches a record it has already
visited all of that record's descendants, which is exactly the order wanted
for bottom-up aggregation.

# Construction

The structure is append-only. Records are written by pushing leaves and
sealing subtrees; once a subtree's root record is written, its span and its
indices are permanent. Appending never renumbers, so any index issued
earlier stays valid for the life of the buffer. There is deliberately no way
to insert into or remove from sealed structure: such an operation would
require recomputing the subtree size of every ancestor and shifting every
later record, and would invalidate every index a caller might hold.

The Builder enforces the construction discipline at run time with an
explicit stack of open start markers: subtrees must be sealed deepest first,
and a seal that does not match the deepest open subtree is rejected before
anything is written. A wrong subtree size would silently corrupt navigation
for the whole ancestor chain, so these violations are never deferred.

# Concurrency

A GroveBuf is mutated by one builder at a time; an append may grow the
backing storage, so concurrent appends need external synchronisation. Once
appending has stopped, any number of Grove views and iterators may read the
buffer concurrently. Navigation never mutates storage.

*/
