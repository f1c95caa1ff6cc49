// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
)

// addVertices inserts idFn(0..n-1) into g.
func addVertices(g *core.Graph, cfg builderConfig, n int, method string) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge connects u→v, drawing a weight only when g observes weights.
func addEdge(g *core.Graph, cfg builderConfig, u, v, method string) error {
	var w int64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
