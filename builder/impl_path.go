// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds a simple path P_n (n ≥ 2): idFn(0)–idFn(1)–…–idFn(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n, methodPath); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, cfg.idFn(i-1), cfg.idFn(i), methodPath); err != nil {
				return err
			}
		}

		return nil
	}
}
