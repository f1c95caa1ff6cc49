// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // outer cycle has size n-1, which must be ≥ 3
)

// Wheel builds W_n: a hub idFn(n-1) joined to every vertex of the cycle
// C_{n-1} on idFn(0..n-2) (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := cfg.idFn(n - 1)
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, hub, cfg.idFn(i), methodWheel); err != nil {
				return err
			}
		}

		return nil
	}
}
