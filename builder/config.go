// SPDX-License-Identifier: MIT
package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn WeightFn
}

// newBuilderConfig starts from deterministic defaults (decimal IDs, no RNG,
// constant weight) and applies options in order; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
