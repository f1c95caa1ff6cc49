// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n (n ≥ 1), emitting edges i<j in lexicographic (i, j) order.
// On directed graphs both directions are added.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n, methodComplete); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := addEdge(g, cfg, u, v, methodComplete); err != nil {
					return err
				}
				if g.Directed() {
					if err := addEdge(g, cfg, v, u, methodComplete); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
