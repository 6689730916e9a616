package grovetesting

import (
	"github.com/google/uuid"

	"github.com/asoffer/grove"
)

// GeneratedGrove is a randomly built grove together with the structure the
// generator assigned while building it. Parents is indexed by record index
// and holds -1 for top-level roots. It is recorded by the generator itself,
// without consulting the navigation arithmetic, so tests can use it as an
// independent oracle.
type GeneratedGrove struct {
	Buf     *grove.GroveBuf[string]
	Parents []int
}

// GenerateGrove builds a grove of exactly n nodes with uuid string values
// and a random shape. Roughly one push in three adopts some of the current
// top-level trees under a new parent, which produces a mix of wide, deep
// and degenerate shapes as n grows.
func (c *TestContext) GenerateGrove(n int) GeneratedGrove {
	g := grove.New[string]()
	parents := make([]int, 0, n)
	var open []int // indices of the current top-level roots, in order

	for g.Len() < n {
		if len(open) > 0 && c.Rng.Intn(3) == 0 {
			k := 1 + c.Rng.Intn(len(open))
			i, err := g.PushRoot(uuid.NewString(), k)
			if err != nil {
				c.T.Fatalf("PushRoot() err: %v", err)
			}
			for _, r := range open[len(open)-k:] {
				parents[r] = i
			}
			open = open[:len(open)-k]
			open = append(open, i)
			parents = append(parents, -1)
			continue
		}
		i := g.PushLeaf(uuid.NewString())
		open = append(open, i)
		parents = append(parents, -1)
	}
	return GeneratedGrove{Buf: g, Parents: parents}
}

// RootIndices returns the indices of the generated grove's top-level roots
// in storage order, derived from the parent table alone.
func (gg GeneratedGrove) RootIndices() []int {
	var roots []int
	for i, p := range gg.Parents {
		if p == -1 {
			roots = append(roots, i)
		}
	}
	return roots
}

// ChildIndices returns the child indices of record i in storage order,
// derived from the parent table alone.
func (gg GeneratedGrove) ChildIndices(i int) []int {
	var children []int
	for j, p := range gg.Parents {
		if p == i {
			children = append(children, j)
		}
	}
	return children
}
