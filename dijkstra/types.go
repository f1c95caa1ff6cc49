// Package dijkstra defines the options, sentinel errors and snapshot types for
// the traced Dijkstra shortest-path generator.
package dijkstra

import (
	"errors"
	"math"
)

// Kind tags every Event and Operation produced by this package.
const Kind = "dijkstra"

// Unreachable is the distance reported for vertices not reached from Source.
const Unreachable = int64(math.MaxInt64)

// Procedure lines referenced by Event.Line.
const (
	LineInit   = 1 // dist[v] ← ∞ for all v; dist[s] ← 0
	LinePush   = 2 // push (s, 0)
	LinePop    = 3 // (u, d) ← pop-min
	LineStale  = 4 // if u settled: continue
	LineRelax  = 5 // for each edge u→v
	LineUpdate = 6 // if dist[u]+w < dist[v]: dist[v] ← …; prev[v] ← u; push
	LineDone   = 7 // return dist, prev
)

// Sentinel errors returned by Trace.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that Source or Target does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the traced Dijkstra run.
//
// Source           – starting vertex ID (required).
// Target           – optional vertex whose path is reconstructed in the Result.
// MaxDistance      – vertices farther than this are not explored (≥ 0).
// InfEdgeThreshold – edges with weight ≥ this value are impassable (> 0).
type Options struct {
	Source           string
	Target           string
	MaxDistance      int64
	InfEdgeThreshold int64

	err error // first invalid option, surfaced by Trace
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target requests path reconstruction toward id.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithMaxDistance caps the explored distance. Negative values make Trace
// return ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Non-positive values make Trace return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = ErrBadInfThreshold
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns options with no distance cap and no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Entry is one (vertex, tentative distance) pair waiting in the priority queue.
type Entry struct {
	ID   string `json:"id"`
	Dist int64  `json:"dist"`
}

// Snapshot is the complete Dijkstra state after one step.
type Snapshot struct {
	// Dist maps every vertex to its best known distance (Unreachable if none).
	Dist map[string]int64 `json:"dist"`

	// Prev maps every vertex to its predecessor on the best known path ("" if none).
	Prev map[string]string `json:"prev"`

	// Settled marks vertices whose distance is final.
	Settled map[string]bool `json:"settled"`

	// Frontier lists queued entries in pop order (stale ones included).
	Frontier []Entry `json:"frontier"`

	// Current is the vertex being expanded, if any.
	Current string `json:"current,omitempty"`

	// Edge is the ID of the edge being relaxed, if any.
	Edge string `json:"edge,omitempty"`
}

// Result is attached to the Operation for the finalizer.
type Result struct {
	Source   string            `json:"source"`
	Dist     map[string]int64  `json:"dist"`
	Prev     map[string]string `json:"prev"`
	Target   string            `json:"target,omitempty"`
	Path     []string          `json:"path,omitempty"`
	Distance int64             `json:"distance"`
	Found    bool              `json:"found"`
}
