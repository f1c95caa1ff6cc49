// Package dijkstra produces playback traces of Dijkstra's shortest-path
// algorithm on weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Trace computes the minimum-cost distances from a single source vertex and
//     records every settle, relaxation, stale-entry skip and impassable edge as a
//     playback.Event whose Snapshot carries the full distance, predecessor,
//     settled and frontier state.
//   - Generator wraps Trace as a playback.Generator for a playback.Runner.
//   - With Target set, the Result carries the reconstructed path and its length.
//
// Key features:
//
//   - Functional options: Source, Target, WithMaxDistance, WithInfEdgeThreshold.
//   - MaxDistance: exploration stops once the closest queued vertex is farther.
//   - InfEdgeThreshold: any edge with weight ≥ threshold is treated as a wall.
//   - Deterministic: ties in the priority queue are broken by vertex ID and
//     edges are relaxed in insertion order, so the same graph always yields
//     the same trace.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
//     ErrNegativeWeight, ErrBadMaxDistance, ErrBadInfThreshold.
//
// Example:
//
//	op, err := dijkstra.Trace(g, dijkstra.Source("A"), dijkstra.Target("F"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res := op.Result.(dijkstra.Result)
//	fmt.Println(res.Path, res.Distance)
package dijkstra
