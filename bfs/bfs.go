// Package bfs traces breadth-first search on a core.Graph.
//
// Complexity:
//
//   - Time:  O(V + E) for the search, plus O(V) per emitted Event for the
//     full-state snapshot copy.
//   - Space: O(V) for the search, O(T·V) for a trace of T Events.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/playback"
)

// queueItem holds a vertex ID and its depth in the BFS tree.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates the state of a traced BFS run.
type walker struct {
	g       *core.Graph
	opts    BFSOptions
	queue   []queueItem
	depth   map[string]int
	parent  map[string]string
	order   []string
	trace   *playback.Trace[Snapshot]
	skipped int
}

// Trace runs breadth-first search from start and records every enqueue,
// dequeue and filtered or depth-limited neighbor as a playback.Event.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil and unweighted (ErrGraphNil, ErrWeightedGraph).
//  3. g must contain start and, if set, Target (ErrStartVertexNotFound).
//
// The returned Operation's Result is a Result value.
func Trace(g *core.Graph, start string, opts ...Option) (*playback.Operation[Snapshot], error) {
	// 1) Build options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate graph and start
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if o.Target != "" && !g.HasVertex(o.Target) {
		return nil, fmt.Errorf("%w: target %q", ErrStartVertexNotFound, o.Target)
	}

	// 3) Initialize walker and run
	w := &walker{
		g:      g,
		opts:   o,
		depth:  make(map[string]int, g.VertexCount()),
		parent: make(map[string]string, g.VertexCount()),
		trace:  playback.NewTrace[Snapshot](Kind),
	}
	if err := w.loop(start); err != nil {
		return nil, err
	}

	return w.finish(start), nil
}

// Generator binds Trace to its inputs for a playback.Runner.
func Generator(g *core.Graph, start string, opts ...Option) playback.Generator[Snapshot] {
	return func() (*playback.Operation[Snapshot], error) {
		return Trace(g, start, opts...)
	}
}

// loop performs the BFS traversal until the queue is exhausted.
func (w *walker) loop(start string) error {
	w.enqueue(start, "", 0)
	w.trace.Emit(LineSeed, w.snapshot(""), "enqueue %s at depth 0", start)

	for len(w.queue) > 0 {
		// Check for cancellation
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.dequeue()
		w.order = append(w.order, item.id)
		w.trace.Emit(LineDequeue, w.snapshot(item.id), "visit %s (depth %d)", item.id, item.depth)

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueue marks id as discovered and appends it to the queue.
func (w *walker) enqueue(id, parent string, depth int) {
	w.depth[id] = depth
	if parent != "" {
		w.parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// dequeue pops the front of the queue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// enqueueNeighbors discovers the unseen neighbors of item, honoring
// MaxDepth and FilterNeighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
		w.trace.Emit(LineScan, w.snapshot(item.id), "depth limit %d reached at %s", w.opts.MaxDepth, item.id)
		return nil
	}

	nbs, err := w.g.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighbors, err)
	}
	for _, nb := range nbs {
		if _, seen := w.depth[nb]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nb) {
			w.skipped++
			w.trace.Emit(LineScan, w.snapshot(item.id), "skip %s→%s (filtered)", item.id, nb)
			continue
		}
		w.enqueue(nb, item.id, item.depth+1)
		w.trace.Emit(LineEnqueue, w.snapshot(item.id), "enqueue %s at depth %d (parent %s)", nb, item.depth+1, item.id)
	}

	return nil
}

// finish emits the closing Event and seals the Operation.
func (w *walker) finish(start string) *playback.Operation[Snapshot] {
	w.trace.Emit(LineDone, w.snapshot(""), "done: visited %d of %d vertices", len(w.order), w.g.VertexCount())

	res := Result{
		Start:  start,
		Order:  append([]string(nil), w.order...),
		Depth:  copyDepth(w.depth),
		Parent: copyParent(w.parent),
		Target: w.opts.Target,
	}
	summary := fmt.Sprintf("bfs from %s visited %d of %d vertices", start, len(w.order), w.g.VertexCount())
	if t := w.opts.Target; t != "" {
		if path, err := res.PathTo(t); err == nil {
			res.Path = path
			summary = fmt.Sprintf("%s reached from %s in %d hops", t, start, len(path)-1)
		} else {
			summary = fmt.Sprintf("%s not reached from %s", t, start)
		}
	}

	return w.trace.Operation(summary, res)
}

// snapshot deep-copies the current state.
func (w *walker) snapshot(current string) Snapshot {
	queue := make([]QueueEntry, len(w.queue))
	for i, it := range w.queue {
		queue[i] = QueueEntry{ID: it.id, Depth: it.depth}
	}

	return Snapshot{
		Queue:   queue,
		Depth:   copyDepth(w.depth),
		Parent:  copyParent(w.parent),
		Order:   append([]string{}, w.order...),
		Current: current,
	}
}

func copyDepth(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyParent(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
