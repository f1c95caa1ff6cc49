// Package segtree defines the query model, options, sentinel errors and
// snapshot types for the traced lazy-propagation segment tree.
package segtree

import (
	"errors"
	"fmt"
)

// Kind tags every Event and Operation produced by this package.
const Kind = "segtree"

// Query operations.
const (
	OpAdd = "add" // add Value to every element of [L, R]
	OpSum = "sum" // sum of elements in [L, R]
)

// Procedure lines referenced by Event.Line.
const (
	LineBuild   = 1 // build(node, lo, hi)
	LineQuery   = 2 // for each query
	LinePush    = 3 // push lazy[node] to children
	LineCover   = 4 // [lo, hi] ⊆ [l, r]: apply or report node
	LineOutside = 5 // [lo, hi] ∩ [l, r] = ∅: return
	LineCombine = 6 // tree[node] ← tree[2node] + tree[2node+1]
	LineAnswer  = 7 // answer ← sum
	LineDone    = 8
)

// Sentinel errors returned by Trace.
var (
	// ErrEmptyArray indicates that no initial values were supplied.
	ErrEmptyArray = errors.New("segtree: array is empty")

	// ErrBadRange indicates a query range outside the array or with L > R.
	ErrBadRange = errors.New("segtree: invalid query range")

	// ErrUnknownOp indicates a Query.Op other than OpAdd or OpSum.
	ErrUnknownOp = errors.New("segtree: unknown query op")
)

// Query is one range operation, with inclusive zero-based bounds.
type Query struct {
	Op    string `json:"op" yaml:"op"`
	L     int    `json:"l" yaml:"l"`
	R     int    `json:"r" yaml:"r"`
	Value int64  `json:"value,omitempty" yaml:"value,omitempty"`
}

// String renders the query the way it appears in trace messages.
func (q Query) String() string {
	if q.Op == OpAdd {
		return fmt.Sprintf("add %d to [%d,%d]", q.Value, q.L, q.R)
	}
	return fmt.Sprintf("sum [%d,%d]", q.L, q.R)
}

// Options configures the traced run.
type Options struct {
	// TraceBuild emits one Event per node while the tree is built.
	TraceBuild bool
}

// Option is a functional option for Trace.
type Option func(*Options)

// DefaultOptions traces the build phase.
func DefaultOptions() Options {
	return Options{TraceBuild: true}
}

// WithoutBuildSteps collapses the build phase into a single Event.
func WithoutBuildSteps() Option {
	return func(o *Options) { o.TraceBuild = false }
}

// Snapshot is the complete segment tree state after one step. Tree and Lazy
// are 1-indexed heap arrays: node k has children 2k and 2k+1.
type Snapshot struct {
	Tree    []int64 `json:"tree"`
	Lazy    []int64 `json:"lazy"`
	Node    int     `json:"node"`
	Lo      int     `json:"lo"`
	Hi      int     `json:"hi"`
	Query   int     `json:"query"` // index into the query batch, -1 while building
	Answers []int64 `json:"answers"`
}

// Result is attached to the Operation for the finalizer.
type Result struct {
	// Answers holds one entry per OpSum query, in order.
	Answers []int64 `json:"answers"`

	// Final is the array after every OpAdd was applied.
	Final []int64 `json:"final"`
}
