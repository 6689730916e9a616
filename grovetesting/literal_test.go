package grovetesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkedExample(t *testing.T) {
	g, err := Build(
		Branch("primary color", Leaf("red"), Leaf("yellow"), Leaf("blue")),
		Branch("direction", Leaf("left"), Leaf("right")),
	)
	require.NoError(t, err)

	v := g.View()
	require.Equal(t, 7, v.Len())
	assert.Equal(t, 2, v.RootCount())

	var values []string
	var sizes []int
	for it := v.Nodes(); it.Next(); {
		values = append(values, it.Value())
		sizes = append(sizes, it.SubtreeSize())
	}
	assert.Equal(t,
		[]string{"red", "yellow", "blue", "primary color", "left", "right", "direction"},
		values)
	assert.Equal(t, []int{1, 1, 1, 4, 1, 1, 3}, sizes)
}

func TestBuildEmpty(t *testing.T) {
	g, err := Build[string]()
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.View().RootCount())
}

func TestBuildDeepPath(t *testing.T) {
	g, err := Build(Branch(1, Branch(2, Branch(3, Leaf(4)))))
	require.NoError(t, err)

	v := g.View()
	var values []int
	for it := v.NodesReverse(); it.Next(); {
		values = append(values, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3, 4}, values)

	s, err := v.SubtreeSizeAt(3)
	require.NoError(t, err)
	assert.Equal(t, 4, s)
}
