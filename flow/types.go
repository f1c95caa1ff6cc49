// Package flow defines the options, sentinel errors and snapshot types for
// the traced Edmonds–Karp maximum-flow generator.
package flow

import (
	"context"
	"errors"
	"fmt"
)

// Kind tags every Event and Operation produced by this package.
const Kind = "max-flow"

// Procedure lines referenced by Event.Line.
const (
	LineInit    = 1 // residual ← capacities; flow ← 0
	LineSearch  = 2 // path ← BFS(residual, s, t)
	LineAugment = 3 // push bottleneck(path) along path
	LineDone    = 4 // no path: return flow, cut
)

// Sentinel errors returned by Trace.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrUnweightedGraph indicates the graph carries no capacities.
	ErrUnweightedGraph = errors.New("flow: graph must be weighted (weights are capacities)")

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSourceIsSink indicates source and sink are the same vertex.
	ErrSourceIsSink = errors.New("flow: source and sink must differ")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures the traced max-flow run.
//   - Ctx: checked before every augmenting-path search.
//   - MaxAugmentations: stop after this many augmentations (0 = unlimited).
type FlowOptions struct {
	Ctx              context.Context
	MaxAugmentations int
}

// Option is a functional option for Trace.
type Option func(*FlowOptions)

// DefaultOptions returns a background context and no augmentation limit.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *FlowOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxAugmentations caps the number of augmenting paths; n ≤ 0 means no cap.
func WithMaxAugmentations(n int) Option {
	return func(o *FlowOptions) { o.MaxAugmentations = n }
}

// Snapshot is the complete max-flow state after one step.
type Snapshot struct {
	// Residual maps u → v → remaining capacity; only positive entries appear.
	Residual map[string]map[string]int64 `json:"residual"`

	// Flow maps u → v → net flow pushed along u→v; only positive entries appear.
	Flow map[string]map[string]int64 `json:"flow"`

	// Path is the augmenting path being examined, if any.
	Path []string `json:"path,omitempty"`

	// Bottleneck is the smallest residual capacity on Path.
	Bottleneck int64 `json:"bottleneck,omitempty"`

	// Total is the flow value pushed so far.
	Total int64 `json:"total"`

	// Cut lists the source side of the minimum cut once the search is over.
	Cut []string `json:"cut,omitempty"`
}

// Result is attached to the Operation for the finalizer.
type Result struct {
	Source  string                      `json:"source"`
	Sink    string                      `json:"sink"`
	MaxFlow int64                       `json:"max_flow"`
	Flow    map[string]map[string]int64 `json:"flow"`
	Paths   [][]string                  `json:"paths"`
	Cut     []string                    `json:"cut"`
	// Complete is false when MaxAugmentations stopped the search early.
	Complete bool `json:"complete"`
}
