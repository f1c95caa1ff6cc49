// Package prim_kruskal produces playback traces of the two classic Minimum
// Spanning Tree algorithms on an undirected, weighted *core.Graph.
//
// What & Why
//
//   - An MST is a subset T ⊆ E that connects every vertex with minimum total
//     weight. Watching the algorithms build it shows the cut property (Prim)
//     and the cycle property (Kruskal) at work.
//
// Algorithms Provided
//
//   - TraceKruskal(g): sort all edges by weight, then walk them smallest
//     first, accepting an edge when a disjoint-set forest says its endpoints
//     are still in different components. Snapshots carry the component
//     representative of every vertex.
//   - TracePrim(g, root): grow a single tree from root, always taking the
//     lightest edge that leaves the tree. Snapshots carry the set of spanned
//     vertices and the heap of candidate edges.
//   - Trace / Generator dispatch on MSTOptions.Method.
//
// Every candidate produces a "consider" Event followed by "accept" or
// "reject". Equal weights are broken by edge insertion order, so a graph
// always yields the same trace.
//
// Error Conditions
//
//   - ErrInvalidGraph: nil, directed or unweighted graph.
//   - ErrEmptyRoot, core.ErrVertexNotFound: bad Prim root.
//   - ErrDisconnected: no spanning tree exists.
//   - ErrUnknownMethod: MSTOptions.Method is not "prim" or "kruskal".
package prim_kruskal
