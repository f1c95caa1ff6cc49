// Package gridgraph turns a 2D grid of cell values into a *core.Graph so the
// graph tracers can run on maps.
//
// Cells with value ≥ LandThreshold are land; everything else is water and
// gets no vertex. Land cells are named "x,y" (column, row) and joined to
// their land neighbors under Conn4 or Conn8 connectivity.
//
// Complexity:
//
//   - ToCoreGraph:         O(W×H×d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoLand: ToCoreGraph found no land cell.
package gridgraph
