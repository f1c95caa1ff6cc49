// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a star with center idFn(0) and leaves idFn(1..n-1) (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n, methodStar); err != nil {
			return err
		}
		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, center, cfg.idFn(i), methodStar); err != nil {
				return err
			}
		}

		return nil
	}
}
