package grove

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sixteen builds the sixteen-node, three-level tree
// [[[[1,2]=>3, [4,5]=>6]=>7, 8, [[9,10]=>11, [12,13]=>14]=>15]=>16].
func sixteen(t *testing.T) *GroveBuf[int] {
	t.Helper()
	g := New[int]()
	push2 := func(a, b, root int) {
		g.PushLeaf(a)
		g.PushLeaf(b)
		_, err := g.PushRoot(root, 2)
		require.NoError(t, err)
	}
	push2(1, 2, 3)
	push2(4, 5, 6)
	_, err := g.PushRoot(7, 2)
	require.NoError(t, err)
	g.PushLeaf(8)
	push2(9, 10, 11)
	push2(12, 13, 14)
	_, err = g.PushRoot(15, 2)
	require.NoError(t, err)
	_, err = g.PushRoot(16, 3)
	require.NoError(t, err)
	return g
}

func TestRootIteratorLastTreeFirst(t *testing.T) {
	v := twoTrees(t).View()

	var roots []int
	var values []string
	for it := v.RootsFromEnd(); it.Next(); {
		roots = append(roots, it.Index())
		values = append(values, it.Value())
	}
	assert.Equal(t, []int{6, 3}, roots)
	assert.Equal(t, []string{"direction", "primary color"}, values)
}

func TestRootIteratorReversedMatchesForwardRoots(t *testing.T) {
	groves := map[string]Grove[string]{
		"empty":     New[string]().View(),
		"two trees": twoTrees(t).View(),
	}
	leaves := New[string]()
	leaves.PushLeaf("a")
	leaves.PushLeaf("b")
	leaves.PushLeaf("c")
	groves["three leaves"] = leaves.View()

	for name, v := range groves {
		t.Run(name, func(t *testing.T) {
			var backward []int
			for it := v.RootsFromEnd(); it.Next(); {
				backward = append(backward, it.Index())
			}
			slices.Reverse(backward)
			assert.Equal(t, v.Roots(), backward)
		})
	}
}

func TestRootIteratorIsSinglePass(t *testing.T) {
	v := twoTrees(t).View()
	it := v.RootsFromEnd()
	for it.Next() {
	}
	// Exhaustion is terminal, not an error.
	assert.False(t, it.Next())
	assert.False(t, it.Next())
}

func TestRootIteratorEmpty(t *testing.T) {
	it := New[int]().View().RootsFromEnd()
	assert.False(t, it.Next())
}

func TestChildIteratorRightmostFirst(t *testing.T) {
	v := sixteen(t).View()

	it, err := v.ChildrenOf(15)
	require.NoError(t, err)

	var values []int
	var sizes []int
	for it.Next() {
		values = append(values, it.Value())
		sizes = append(sizes, it.SubtreeSize())
	}
	assert.Equal(t, []int{15, 8, 7}, values)
	assert.Equal(t, []int{7, 1, 7}, sizes)
}

func TestChildIteratorSubtrees(t *testing.T) {
	v := sixteen(t).View()

	it, err := v.ChildrenOf(6)
	require.NoError(t, err)

	var rootValues [][]int
	for it.Next() {
		rootValues = append(rootValues, it.Tree().Values())
	}
	assert.Equal(t, [][]int{{4, 5, 6}, {1, 2, 3}}, rootValues)
}

func TestDescendantIteratorStorageOrder(t *testing.T) {
	v := sixteen(t).View()

	it, err := v.DescendantsOf(6)
	require.NoError(t, err)

	var values []int
	for it.Next() {
		values = append(values, it.Value())
	}
	// Every strict descendant of node 7 (value 7, index 6), children before
	// parents at every level, and not node 7 itself.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, values)
}

func TestDescendantIteratorBottomUpFold(t *testing.T) {
	v := sixteen(t).View()

	// A forward fold over a descendant span reaches every record after all
	// of that record's descendants: recompute each subtree's node count
	// bottom-up and compare with the stored sizes.
	counted := make(map[int]int) // index -> recomputed subtree size
	it, err := v.DescendantsOf(15)
	require.NoError(t, err)
	for it.Next() {
		i := it.Index()
		total := 1
		children, err := v.ChildrenOf(i)
		require.NoError(t, err)
		for children.Next() {
			total += counted[children.Index()]
		}
		counted[i] = total
		assert.Equal(t, it.SubtreeSize(), total, "index %d", i)
	}
	assert.Len(t, counted, 15)
}

func TestNodesForwardAndReverse(t *testing.T) {
	v := sixteen(t).View()

	var forward []int
	for it := v.Nodes(); it.Next(); {
		forward = append(forward, it.Value())
	}
	assert.Equal(t,
		[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, forward)

	var backward []int
	for it := v.NodesReverse(); it.Next(); {
		backward = append(backward, it.Value())
	}
	slices.Reverse(backward)
	assert.Equal(t, forward, backward)
}

func TestNodesEnumeratesEverySubtree(t *testing.T) {
	v := sixteen(t).View()

	var sizes []int
	for it := v.Nodes(); it.Next(); {
		sizes = append(sizes, it.Tree().Len())
	}
	assert.Equal(t,
		[]int{1, 1, 3, 1, 1, 3, 7, 1, 1, 1, 3, 1, 1, 3, 7, 16}, sizes)
}

func TestNodesEmpty(t *testing.T) {
	v := New[int]().View()
	assert.False(t, v.Nodes().Next())
	assert.False(t, v.NodesReverse().Next())
}
