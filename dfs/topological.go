package dfs

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/playback"
)

// TopoOption configures optional behavior for TraceTopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TraceTopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	colors
	graph *core.Graph
	ctx   context.Context
	cycle []string
}

// TraceTopologicalSort computes a topological ordering of all vertices in g
// by reversing the DFS post-order, starting roots in vertex-ID order.
//
// A cycle is not an error: the trace stops at the first back edge, emits it,
// and the Operation's TopoResult has Acyclic=false and the Cycle that was
// found, so a viewer can show where ordering became impossible.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrNeighborFetch, ctx errors.
func TraceTopologicalSort(g *core.Graph, options ...TopoOption) (*playback.Operation[Snapshot], error) {
	// 1. Validate graph pointer and direction
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	// 2. Apply optional settings
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	// 3. Drive DFS from every unvisited vertex until a cycle shows up
	verts := g.Vertices()
	t := &topoSorter{colors: newColors(KindTopological, verts), graph: g, ctx: opts.ctx}
	for _, v := range verts {
		if t.state[v] != White {
			continue
		}
		if err := t.visit(v, ""); err != nil {
			return nil, err
		}
		if t.cycle != nil {
			break
		}
	}

	// 4. Cycle: no order exists
	if t.cycle != nil {
		chain := strings.Join(t.cycle, "→")
		t.trace.Emit(LineDone, t.snapshot("", t.cycle), "stop: cycle %s", chain)
		res := TopoResult{Order: []string{}, Acyclic: false, Cycle: t.cycle}
		return t.trace.Operation("graph has a cycle: "+chain, res), nil
	}

	// 5. Reverse post-order
	order := make([]string, len(t.order))
	for i, v := range t.order {
		order[len(order)-1-i] = v
	}
	t.trace.Emit(LineDone, t.snapshot("", nil), "done: order %s", strings.Join(order, ", "))
	res := TopoResult{Order: order, Acyclic: true}

	return t.trace.Operation("topological order: "+strings.Join(order, ", "), res), nil
}

// TopologicalGenerator binds TraceTopologicalSort to its inputs for a playback.Runner.
func TopologicalGenerator(g *core.Graph, options ...TopoOption) playback.Generator[Snapshot] {
	return func() (*playback.Operation[Snapshot], error) {
		return TraceTopologicalSort(g, options...)
	}
}

// visit performs a DFS from id, marking states and detecting cycles. It
// returns with t.cycle set as soon as a back edge is found.
func (t *topoSorter) visit(id, parent string) error {
	// 1. Cancellation check at entry
	if err := t.ctx.Err(); err != nil {
		return err
	}

	// 2. Mark as in-progress (Gray)
	t.enter(id)
	if parent == "" {
		t.trace.Emit(LineEnter, t.snapshot(id, nil), "enter %s", id)
	} else {
		t.trace.Emit(LineEnter, t.snapshot(id, nil), "enter %s via %s→%s", id, parent, id)
	}

	// 3. Retrieve outgoing edges in insertion order
	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}

	// 4. Explore each outgoing edge
	for _, e := range neighbors {
		if e.From != id {
			continue
		}
		switch t.state[e.To] {
		case Gray:
			t.cycle = t.closeCycle(e.To)
			t.trace.Emit(LineBack, t.snapshot(id, t.cycle), "back edge %s→%s: cycle %s", id, e.To, strings.Join(t.cycle, "→"))
			return nil
		case Black:
			t.trace.Emit(LineEdge, t.snapshot(id, nil), "skip %s→%s: %s already finished", id, e.To, e.To)
		default:
			if err = t.visit(e.To, id); err != nil {
				return err
			}
			if t.cycle != nil {
				return nil
			}
		}
	}

	// 5. Mark as fully explored (Black) and record post-order
	t.exit(id)
	t.trace.Emit(LineExit, t.snapshot(id, nil), "exit %s", id)

	return nil
}

// closeCycle returns the stack suffix starting at head, closed by head again.
func (t *topoSorter) closeCycle(head string) []string {
	for i, v := range t.stack {
		if v == head {
			cycle := append([]string{}, t.stack[i:]...)
			return append(cycle, head)
		}
	}

	return []string{head, head}
}

// Err returns nil for an acyclic result, otherwise ErrCycleDetected wrapped
// with the cycle that was found.
func (r TopoResult) Err() error {
	if r.Acyclic {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(r.Cycle, "→"))
}
