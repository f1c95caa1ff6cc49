// Package bfs provides tunable options, sentinel errors and snapshot types
// for the traced breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Kind tags every Event and Operation produced by this package.
const Kind = "bfs"

// Procedure lines referenced by Event.Line.
const (
	LineSeed    = 1 // enqueue(start, 0)
	LineDequeue = 2 // u ← dequeue
	LineScan    = 3 // for each neighbor v of u
	LineEnqueue = 4 // if v unseen: parent[v] ← u; enqueue(v, depth+1)
	LineDone    = 5 // return depth, parent
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation by Trace.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation of long traces.
	Ctx context.Context

	// Target, if set, is the vertex whose path is reported in the Result.
	Target string

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns a BFSOptions with Background context, no depth limit
// and no filtering.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget requests path reconstruction toward id.
func WithTarget(id string) Option {
	return func(o *BFSOptions) { o.Target = id }
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// QueueEntry is one vertex waiting in the FIFO queue.
type QueueEntry struct {
	ID    string `json:"id"`
	Depth int    `json:"depth"`
}

// Snapshot is the complete BFS state after one step.
type Snapshot struct {
	Queue   []QueueEntry      `json:"queue"`
	Depth   map[string]int    `json:"depth"`
	Parent  map[string]string `json:"parent"`
	Order   []string          `json:"order"`
	Current string            `json:"current,omitempty"`
}

// Result holds the outcome of a traced BFS.
type Result struct {
	Start  string            `json:"start"`
	Order  []string          `json:"order"`
	Depth  map[string]int    `json:"depth"`
	Parent map[string]string `json:"parent"`
	Target string            `json:"target,omitempty"`
	Path   []string          `json:"path,omitempty"`
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
