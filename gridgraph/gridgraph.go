package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
)

// Forward offsets: each unordered neighbor pair is visited exactly once.
var (
	forward4 = [][2]int{{1, 0}, {0, 1}}
	forward8 = [][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
)

// New constructs a GridGraph from a non-empty, rectangular 2D slice.
// The input is deep-copied.
//
// Errors: ErrEmptyGrid, ErrNonRectangular.
// Complexity: O(W×H).
func New(values [][]int64, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int64, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = append([]int64(nil), row...)
	}

	return &GridGraph{Width: w, Height: h, Cells: cells, opts: opts}, nil
}

// InBounds reports whether (x,y) lies within the grid.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Land reports whether (x,y) is inside the grid and at or above the land threshold.
func (gg *GridGraph) Land(x, y int) bool {
	return gg.InBounds(x, y) && gg.Cells[y][x] >= gg.opts.LandThreshold
}

// VertexID is the core.Graph vertex ID of cell (x,y).
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the land cells into an undirected *core.Graph.
// Each land cell becomes vertex "x,y"; adjacent land cells share one edge.
// When GridOptions.Weighted is set the graph is weighted and an edge costs
// the larger of its two cell values.
//
// Errors: ErrNoLand.
// Complexity: O(W×H×d).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	var gopts []core.GraphOption
	if gg.opts.Weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	g := core.NewGraph(gopts...)

	offsets := forward4
	if gg.opts.Conn == Conn8 {
		offsets = forward8
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Land(x, y) {
				continue
			}
			if err := g.AddVertex(VertexID(x, y)); err != nil {
				return nil, err
			}
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Land(nx, ny) {
					continue
				}
				var w int64
				if gg.opts.Weighted {
					w = max(gg.Cells[y][x], gg.Cells[ny][nx])
				}
				if _, err := g.AddEdge(VertexID(x, y), VertexID(nx, ny), w); err != nil {
					return nil, fmt.Errorf("gridgraph: edge %s-%s: %w", VertexID(x, y), VertexID(nx, ny), err)
				}
			}
		}
	}
	if g.VertexCount() == 0 {
		return nil, ErrNoLand
	}

	return g, nil
}
