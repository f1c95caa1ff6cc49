// SPDX-License-Identifier: MIT
package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithIDPrefix prepends prefix to the IDs of the current scheme, so two
// constructors in one BuildGraph call can produce disjoint vertex sets.
func WithIDPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) {
		base := c.idFn
		c.idFn = func(i int) string { return prefix + base(i) }
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightRange draws weights uniformly from [min, max]; it needs WithSeed
// to be random. Panics if min < 0 or max < min.
func WithWeightRange(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
