// Package dfs defines types and options for traced depth-first search:
// cancellation, depth limiting, neighbor filtering and full-graph (forest)
// traversal, plus the snapshot shared by DFS and TopologicalSort traces.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// Operation kinds.
const (
	// Kind tags traversal traces.
	Kind = "dfs"

	// KindTopological tags topological-sort traces.
	KindTopological = "topological-sort"
)

// Procedure lines referenced by Event.Line.
const (
	LineEnter = 1 // color[u] ← gray
	LineEdge  = 2 // for each edge u→v
	LineBack  = 3 // if color[v] = gray: cycle
	LineExit  = 4 // color[u] ← black; post-order ← u
	LineDone  = 5 // return reverse(post-order)
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered. TopologicalSort
	// reports it through Result.Acyclic rather than returning it.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected is returned when TopologicalSort receives an undirected graph.
	ErrNotDirected = errors.New("dfs: topological sort requires a directed graph")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before recursing.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts from each unvisited vertex, covering every component.
	FullTraversal bool
}

// DefaultOptions returns Background context, no depth limit, no filter and
// single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbor IDs for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// Snapshot is the complete DFS state after one step.
type Snapshot struct {
	// State maps every vertex to White, Gray or Black.
	State map[string]int `json:"state"`

	// Stack is the current recursion path, root first.
	Stack []string `json:"stack"`

	// Order is the post-order finish sequence so far.
	Order []string `json:"order"`

	// Current is the vertex being expanded, if any.
	Current string `json:"current,omitempty"`

	// Cycle is the closed cycle found by a back edge (first vertex repeated last).
	Cycle []string `json:"cycle,omitempty"`
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string `json:"order"`

	// Depth maps each vertex ID to its distance (#edges) from its tree root.
	Depth map[string]int `json:"depth"`

	// Parent maps each vertex ID to the vertex from which it was first discovered.
	Parent map[string]string `json:"parent"`

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int `json:"skippedNeighbors"`
}

// TopoResult captures the outcome of a topological sort.
type TopoResult struct {
	// Order is the topological order; empty when the graph has a cycle.
	Order []string `json:"order"`

	// Acyclic reports whether a full order exists.
	Acyclic bool `json:"acyclic"`

	// Cycle is the first cycle found, first vertex repeated last.
	Cycle []string `json:"cycle,omitempty"`
}
