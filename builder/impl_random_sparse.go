// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds an Erdős–Rényi G(n, p) graph: every unordered pair
// (ordered on directed graphs) is kept with probability p. The RNG from
// WithSeed is required when 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices
		if err := addVertices(g, cfg, n, methodRandomSparse); err != nil {
			return err
		}

		// 3) Sample pairs in (i, j) order
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!g.Directed() && j < i) {
					continue
				}
				if keep() {
					if err := addEdge(g, cfg, cfg.idFn(i), cfg.idFn(j), methodRandomSparse); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
