// Package gridgraph defines options, sentinel errors and the GridGraph type.
package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrNoLand indicates no cell reaches the land threshold.
	ErrNoLand = errors.New("gridgraph: grid has no land cells")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// LandThreshold is the minimum cell value considered "land".
	LandThreshold int64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Weighted makes ToCoreGraph weight each edge by the larger of its two cell values.
	Weighted bool
}

// DefaultGridOptions returns LandThreshold=1, Conn4, unweighted.
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1, Conn: Conn4}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Cells[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	Cells         [][]int64
	opts          GridOptions
}
