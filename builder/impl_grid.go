// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c", a fixed coordinate scheme
)

// Grid builds an R×C 4-neighborhood grid with IDs "r,c" (row-major). Each
// cell links right, then down. On directed graphs the reverse edge is added too.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		link := func(u, v string) error {
			if err := addEdge(g, cfg, u, v, methodGrid); err != nil {
				return err
			}
			if g.Directed() {
				return addEdge(g, cfg, v, u, methodGrid)
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := link(u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
