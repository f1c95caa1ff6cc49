// Package dfs produces playback traces of depth-first search and of
// DFS-based topological sorting on a core.Graph.
//
// What:
//
//   - Trace: explores as far as possible along each branch before
//     backtracking, from one start vertex or (WithFullTraversal) from every
//     unvisited vertex. Supports cancellation, depth limiting and neighbor
//     filtering.
//   - TraceTopologicalSort: orders the vertices of a directed graph so every
//     edge points forward, by reversing the DFS post-order.
//
// Every Snapshot carries the White/Gray/Black color of each vertex, the gray
// recursion stack and the post-order so far, which is exactly what is needed
// to draw the search tree and spot back edges.
//
// Cycles:
//
//   - A back edge during TraceTopologicalSort ends the trace with a cycle
//     Event; the Operation is still returned with TopoResult.Acyclic=false and
//     TopoResult.Err() wrapping ErrCycleDetected.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrNotDirected          topological sort on an undirected graph
//   - ErrNeighborFetch        adjacency lookup failed
//   - context.Canceled        cancelled via context
package dfs
