// Package grovetesting provides shared support for tests that exercise
// grove construction and navigation: a seeded context for reproducible
// generation, a declarative literal front end over the builder, and a
// random grove generator that independently records the structure it built.
package grovetesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	Rng *rand.Rand
	T   *testing.T
}

type TestConfig struct {
	// We seed the RNG with the provided Seed. It is normal to force it to
	// some fixed value so that the generated groves are the same from run
	// to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{T: t}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	c.Rng = rand.New(rand.NewSource(cfg.Seed))
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
