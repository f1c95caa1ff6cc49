// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds a simple cycle C_n (n ≥ 3): a Path closed by idFn(n-1)–idFn(0).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		return addEdge(g, cfg, cfg.idFn(n-1), cfg.idFn(0), methodCycle)
	}
}
