// Package prim_kruskal defines configuration options, sentinel errors and
// snapshot types for traced MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/playback"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Procedure lines referenced by Event.Line.
const (
	LineSort     = 1 // Kruskal: sort E by weight / Prim: visited ← {root}; push edges(root)
	LineConsider = 2 // (u, v, w) ← next candidate
	LineReject   = 3 // if u, v already joined: skip
	LineAccept   = 4 // T ← T ∪ {(u, v)}
	LineDone     = 5 // return T
)

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Candidate is an edge waiting to be considered, oriented From the tree side.
type Candidate struct {
	ID     string `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// Snapshot is the complete MST state after one step.
type Snapshot struct {
	// Tree lists accepted edge IDs in acceptance order.
	Tree []string `json:"tree"`

	// Total is the weight of Tree.
	Total int64 `json:"total"`

	// Candidates lists edges not yet considered, in the order they will be.
	Candidates []Candidate `json:"candidates"`

	// Component maps every vertex to its union-find representative (Kruskal only).
	Component map[string]string `json:"component,omitempty"`

	// InTree marks vertices already spanned (Prim only).
	InTree map[string]bool `json:"inTree,omitempty"`

	// Edge is the ID of the edge under consideration, if any.
	Edge string `json:"edge,omitempty"`
}

// Result is attached to the Operation for the finalizer.
type Result struct {
	Method string      `json:"method"`
	Root   string      `json:"root,omitempty"`
	Edges  []core.Edge `json:"edges"`
	Total  int64       `json:"total"`
}

// Trace selects and runs the traced MST algorithm based on opts.Method.
//
//	– MethodKruskal: TraceKruskal(graph).
//	– MethodPrim:    TracePrim(graph, opts.Root).
//	– Otherwise:     ErrUnknownMethod.
func Trace(graph *core.Graph, opts ...Option) (*playback.Operation[Snapshot], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return TraceKruskal(graph)
	case MethodPrim:
		return TracePrim(graph, o.Root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// Generator binds Trace to its inputs for a playback.Runner.
func Generator(graph *core.Graph, opts ...Option) playback.Generator[Snapshot] {
	return func() (*playback.Operation[Snapshot], error) {
		return Trace(graph, opts...)
	}
}

// validate checks the graph preconditions shared by both algorithms and
// returns the sorted vertex IDs.
func validate(graph *core.Graph) ([]string, error) {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return nil, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, fmt.Errorf("%w: graph has no vertices", ErrDisconnected)
	}

	return vertices, nil
}

// edgeRank maps every edge ID to its insertion position, the tie-breaker for equal weights.
func edgeRank(graph *core.Graph) map[string]int {
	edges := graph.Edges()
	rank := make(map[string]int, len(edges))
	for i, e := range edges {
		rank[e.ID] = i
	}

	return rank
}

// sortCandidates orders by weight, then by insertion rank.
func sortCandidates(cs []Candidate, rank map[string]int) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Weight != cs[j].Weight {
			return cs[i].Weight < cs[j].Weight
		}
		return rank[cs[i].ID] < rank[cs[j].ID]
	})
}

func summary(method string, tree []core.Edge, total int64) string {
	return fmt.Sprintf("%s MST: %d edges, total weight %d", method, len(tree), total)
}
