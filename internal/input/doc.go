// Package input loads the YAML documents that describe one trace to play:
// the algorithm name plus whichever inputs that algorithm needs (a graph or
// a cell grid, an array and queries, trie commands, a text and pattern, or
// points).
//
// Every document is checked against an embedded CUE schema before it is
// decoded, so a typo in a field name or a missing required input is reported
// with its path instead of surfacing later as an empty trace.
//
// Example document:
//
//	algorithm: dijkstra
//	source: A
//	target: C
//	graph:
//	  edges:
//	    - {from: A, to: B, weight: 1}
//	    - {from: B, to: C, weight: 2}
package input
