// Package bfs produces playback traces of breadth-first search on unweighted
// graphs.
//
// What:
//
//   - Trace explores the graph level by level from a start vertex. Every
//     enqueue, visit, filtered neighbor and depth cutoff is recorded as a
//     playback.Event whose Snapshot holds the queue, depth and parent maps
//     and the visit order so far.
//   - Generator wraps Trace as a playback.Generator for a playback.Runner.
//
// Why:
//
//   - BFS finds shortest hop-count paths; the trace shows how the frontier
//     grows one layer at a time.
//
// Options:
//
//   - WithContext: cancel long traces.
//   - WithTarget: report the path to a vertex in the Result.
//   - WithMaxDepth: stop expanding beyond a depth (negative → ErrOptionViolation).
//   - WithFilterNeighbor: skip edges by predicate.
//
// Determinism:
//
//   - Neighbors are discovered in lexicographic order of their IDs.
package bfs
