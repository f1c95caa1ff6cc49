package segtree

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/playback"
)

// Trace builds a sum segment tree over values and runs the queries in order,
// recording each visited node, lazy push-down and answer.
//
// Preconditions (in order):
//  1. values must be non-empty (ErrEmptyArray).
//  2. every query must be OpAdd or OpSum (ErrUnknownOp) with
//     0 ≤ L ≤ R < len(values) (ErrBadRange).
//
// Complexity: O(n + q log n) steps, each Event copying O(n) state.
func Trace(values []int64, queries []Query, opts ...Option) (*playback.Operation[Snapshot], error) {
	// 1) Options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Validate
	if len(values) == 0 {
		return nil, ErrEmptyArray
	}
	for i, q := range queries {
		if q.Op != OpAdd && q.Op != OpSum {
			return nil, fmt.Errorf("%w: query %d has op %q", ErrUnknownOp, i, q.Op)
		}
		if q.L < 0 || q.R >= len(values) || q.L > q.R {
			return nil, fmt.Errorf("%w: query %d [%d,%d] on %d elements", ErrBadRange, i, q.L, q.R, len(values))
		}
	}

	// 3) Build
	n := len(values)
	t := &tracer{
		n:     n,
		tree:  make([]int64, 4*n),
		lazy:  make([]int64, 4*n),
		query: -1,
		opts:  o,
		trace: playback.NewTrace[Snapshot](Kind),
	}
	t.build(1, 0, n-1, values)
	if !o.TraceBuild {
		t.trace.Emit(LineBuild, t.snapshot(1, 0, n-1), "build tree over %d elements: total %d", n, t.tree[1])
	}

	// 4) Queries
	for i, q := range queries {
		t.query = i
		t.trace.Emit(LineQuery, t.snapshot(1, 0, n-1), "query %d: %s", i, q)
		if q.Op == OpAdd {
			t.update(1, 0, n-1, q.L, q.R, q.Value)
			continue
		}
		sum := t.sum(1, 0, n-1, q.L, q.R)
		t.answers = append(t.answers, sum)
		t.trace.Emit(LineAnswer, t.snapshot(1, 0, n-1), "answer sum[%d,%d] = %d", q.L, q.R, sum)
	}

	// 5) Seal
	t.query = -1
	final := make([]int64, n)
	t.collect(1, 0, n-1, 0, final)
	t.trace.Emit(LineDone, t.snapshot(1, 0, n-1), "done: %d queries, total %d", len(queries), t.tree[1])
	res := Result{Answers: append([]int64{}, t.answers...), Final: final}
	summary := fmt.Sprintf("segment tree over %d elements answered %d sums", n, len(t.answers))

	return t.trace.Operation(summary, res), nil
}

// Generator binds Trace to its inputs for a playback.Runner.
func Generator(values []int64, queries []Query, opts ...Option) playback.Generator[Snapshot] {
	return func() (*playback.Operation[Snapshot], error) {
		return Trace(values, queries, opts...)
	}
}

// tracer holds the mutable state of a single traced run.
type tracer struct {
	n       int
	tree    []int64
	lazy    []int64
	query   int
	answers []int64
	opts    Options
	trace   *playback.Trace[Snapshot]
}

func (t *tracer) build(node, lo, hi int, values []int64) {
	if lo == hi {
		t.tree[node] = values[lo]
		if t.opts.TraceBuild {
			t.trace.Emit(LineBuild, t.snapshot(node, lo, hi), "leaf %d [%d,%d] = %d", node, lo, hi, values[lo])
		}
		return
	}
	mid := (lo + hi) / 2
	t.build(2*node, lo, mid, values)
	t.build(2*node+1, mid+1, hi, values)
	t.tree[node] = t.tree[2*node] + t.tree[2*node+1]
	if t.opts.TraceBuild {
		t.trace.Emit(LineCombine, t.snapshot(node, lo, hi), "node %d [%d,%d] = %d + %d = %d",
			node, lo, hi, t.tree[2*node], t.tree[2*node+1], t.tree[node])
	}
}

// apply adds v to every element under node without visiting its children.
func (t *tracer) apply(node, lo, hi int, v int64) {
	t.tree[node] += v * int64(hi-lo+1)
	if lo != hi {
		t.lazy[node] += v
	}
}

// push moves a pending lazy add from node to its children.
func (t *tracer) push(node, lo, hi int) {
	v := t.lazy[node]
	if v == 0 {
		return
	}
	mid := (lo + hi) / 2
	t.apply(2*node, lo, mid, v)
	t.apply(2*node+1, mid+1, hi, v)
	t.lazy[node] = 0
	t.trace.Emit(LinePush, t.snapshot(node, lo, hi), "push lazy %d from node %d to nodes %d and %d", v, node, 2*node, 2*node+1)
}

func (t *tracer) update(node, lo, hi, l, r int, v int64) {
	if r < lo || hi < l {
		t.trace.Emit(LineOutside, t.snapshot(node, lo, hi), "node %d [%d,%d] is outside [%d,%d]", node, lo, hi, l, r)
		return
	}
	if l <= lo && hi <= r {
		t.apply(node, lo, hi, v)
		t.trace.Emit(LineCover, t.snapshot(node, lo, hi), "node %d [%d,%d] covered: add %d×%d, now %d",
			node, lo, hi, v, hi-lo+1, t.tree[node])
		return
	}
	t.push(node, lo, hi)
	mid := (lo + hi) / 2
	t.update(2*node, lo, mid, l, r, v)
	t.update(2*node+1, mid+1, hi, l, r, v)
	t.tree[node] = t.tree[2*node] + t.tree[2*node+1]
	t.trace.Emit(LineCombine, t.snapshot(node, lo, hi), "node %d [%d,%d] = %d + %d = %d",
		node, lo, hi, t.tree[2*node], t.tree[2*node+1], t.tree[node])
}

func (t *tracer) sum(node, lo, hi, l, r int) int64 {
	if r < lo || hi < l {
		t.trace.Emit(LineOutside, t.snapshot(node, lo, hi), "node %d [%d,%d] is outside [%d,%d]", node, lo, hi, l, r)
		return 0
	}
	if l <= lo && hi <= r {
		t.trace.Emit(LineCover, t.snapshot(node, lo, hi), "node %d [%d,%d] contributes %d", node, lo, hi, t.tree[node])
		return t.tree[node]
	}
	t.push(node, lo, hi)
	mid := (lo + hi) / 2

	return t.sum(2*node, lo, mid, l, r) + t.sum(2*node+1, mid+1, hi, l, r)
}

// collect writes the effective leaf values into out, carrying pending lazy
// adds down without mutating the tree.
func (t *tracer) collect(node, lo, hi int, carry int64, out []int64) {
	if lo == hi {
		out[lo] = t.tree[node] + carry
		return
	}
	carry += t.lazy[node]
	mid := (lo + hi) / 2
	t.collect(2*node, lo, mid, carry, out)
	t.collect(2*node+1, mid+1, hi, carry, out)
}

// snapshot deep-copies the current state.
func (t *tracer) snapshot(node, lo, hi int) Snapshot {
	return Snapshot{
		Tree:    append([]int64{}, t.tree...),
		Lazy:    append([]int64{}, t.lazy...),
		Node:    node,
		Lo:      lo,
		Hi:      hi,
		Query:   t.query,
		Answers: append([]int64{}, t.answers...),
	}
}
