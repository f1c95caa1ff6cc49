// Package flow produces playback traces of the Edmonds–Karp maximum-flow
// algorithm on weighted graphs, whose edge weights are read as capacities.
//
// Overview:
//
//   - Trace repeatedly finds the shortest augmenting path in the residual
//     network by BFS and pushes its bottleneck capacity along it. Every search
//     and every augmentation is a playback.Event whose Snapshot carries the full
//     residual capacities, the net flow on every arc and the running total.
//   - When no augmenting path remains, the final Event reports the maximum flow
//     and the source side of a minimum cut.
//   - Generator wraps Trace as a playback.Generator for a playback.Runner.
//
// Graph support:
//
//	– Directed edges carry capacity one way; undirected edges both ways.
//	– Parallel edges are summed; self-loops are ignored.
//
// Options: WithContext (cancellation between searches) and
// WithMaxAugmentations (stop early; Result.Complete is then false).
//
// Errors: ErrGraphNil, ErrUnweightedGraph, ErrSourceNotFound, ErrSinkNotFound,
// ErrSourceIsSink and EdgeError for a negative capacity.
//
// Complexity: O(V · E²) for the search; each Event adds an O(V + E) snapshot copy.
package flow
