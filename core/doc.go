// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory Graph that the graph trace
// generators (dijkstra, bfs, prim_kruskal, dfs) read from.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Monotonic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Traces must be reproducible, so every enumeration is ordered:
//	Vertices() and NeighborIDs() are lexicographic, Edges() and Neighbors()
//	follow edge insertion order.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Lock order is always muVert → muEdgeAdj.
package core
