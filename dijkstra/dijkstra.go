// Package dijkstra traces Dijkstra's shortest-path algorithm on weighted graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the search, plus O(V) per emitted Event for
//     the full-state snapshot copy.
//   - Space: O(V + E) for the search, O(T·V) for a trace of T Events.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: stale heap entries are popped and skipped,
//     and each skip is a visible Event.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/playback"
)

// Trace runs Dijkstra from Options.Source and records every step.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must be weighted (ErrUnweightedGraph).
//  5. g must contain Source and, if set, Target (ErrVertexNotFound).
//  6. No edge in g can have negative weight (ErrNegativeWeight).
//
// The returned Operation's Result is a Result value.
func Trace(g *core.Graph, opts ...Option) (*playback.Operation[Snapshot], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate graph
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	// 4) Validate Source and Target exist in the graph
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	// 5) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 6) Run the traced search.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		settled: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
		trace:   playback.NewTrace[Snapshot](Kind),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.finish(), nil
}

// Generator binds Trace to its inputs for a playback.Runner.
func Generator(g *core.Graph, opts ...Option) playback.Generator[Snapshot] {
	return func() (*playback.Operation[Snapshot], error) {
		return Trace(g, opts...)
	}
}

// runner holds the mutable state for a single traced execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	settled map[string]bool
	pq      nodePQ
	trace   *playback.Trace[Snapshot]
}

// init sets every distance to Unreachable, the source to zero, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Unreachable
		r.prev[v] = ""
		r.settled[v] = false
	}
	r.dist[r.options.Source] = 0
	r.trace.Emit(LineInit, r.snapshot("", ""), "initialise distances: dist[%s] = 0, all others ∞", r.options.Source)

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
	r.trace.Emit(LinePush, r.snapshot("", ""), "push (%s, 0)", r.options.Source)
}

// process repeatedly extracts the closest unsettled vertex and relaxes its edges.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale entry from lazy decrease-key.
		if r.settled[u] {
			r.trace.Emit(LineStale, r.snapshot(u, ""), "skip stale entry (%s, %d)", u, d)
			continue
		}

		if d > r.options.MaxDistance {
			r.trace.Emit(LinePop, r.snapshot("", ""), "stop: %s at %d exceeds max distance %d", u, d, r.options.MaxDistance)
			break
		}

		r.settled[u] = true
		r.trace.Emit(LinePop, r.snapshot(u, ""), "settle %s at distance %d", u, d)

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbor distances.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.Other(u)
		w := e.Weight

		if w >= r.options.InfEdgeThreshold {
			r.trace.Emit(LineRelax, r.snapshot(u, e.ID), "edge %s→%s (w=%d) is impassable", u, v, w)
			continue
		}
		if r.settled[v] {
			continue
		}

		// Guard int64 overflow on pathological weights.
		if w > math.MaxInt64-r.dist[u] {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			r.trace.Emit(LineRelax, r.snapshot(u, e.ID), "skip %s→%s: %d exceeds max distance", u, v, newDist)
			continue
		}
		if newDist >= r.dist[v] {
			r.trace.Emit(LineRelax, r.snapshot(u, e.ID), "keep dist[%s] = %s (via %s would be %d)", v, formatDist(r.dist[v]), u, newDist)
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
		r.trace.Emit(LineUpdate, r.snapshot(u, e.ID), "relax %s→%s: dist[%s] = %d", u, v, v, newDist)
	}

	return nil
}

// finish emits the closing Event and seals the Operation.
func (r *runner) finish() *playback.Operation[Snapshot] {
	reached := 0
	for _, d := range r.dist {
		if d != Unreachable {
			reached++
		}
	}
	r.trace.Emit(LineDone, r.snapshot("", ""), "done: %d of %d vertices reachable from %s", reached, len(r.dist), r.options.Source)

	res := Result{
		Source:   r.options.Source,
		Dist:     copyDist(r.dist),
		Prev:     copyPrev(r.prev),
		Target:   r.options.Target,
		Distance: Unreachable,
	}
	summary := fmt.Sprintf("shortest paths from %s: %d of %d vertices reachable", r.options.Source, reached, len(r.dist))
	if t := r.options.Target; t != "" && r.dist[t] != Unreachable {
		res.Found = true
		res.Distance = r.dist[t]
		res.Path = PathTo(r.prev, r.options.Source, t)
		summary = fmt.Sprintf("shortest path %s→%s has length %d", r.options.Source, t, res.Distance)
	} else if t != "" {
		summary = fmt.Sprintf("%s is unreachable from %s", t, r.options.Source)
	}

	return r.trace.Operation(summary, res)
}

// snapshot deep-copies the current state.
func (r *runner) snapshot(current, edge string) Snapshot {
	frontier := make([]Entry, len(r.pq))
	for i, it := range r.pq {
		frontier[i] = Entry{ID: it.id, Dist: it.dist}
	}
	sort.Slice(frontier, func(i, j int) bool {
		if frontier[i].Dist != frontier[j].Dist {
			return frontier[i].Dist < frontier[j].Dist
		}
		return frontier[i].ID < frontier[j].ID
	})

	settled := make(map[string]bool, len(r.settled))
	for k, v := range r.settled {
		settled[k] = v
	}

	return Snapshot{
		Dist:     copyDist(r.dist),
		Prev:     copyPrev(r.prev),
		Settled:  settled,
		Frontier: frontier,
		Current:  current,
		Edge:     edge,
	}
}

// PathTo walks prev back from target to source. It returns nil if target is
// not connected to source through prev.
func PathTo(prev map[string]string, source, target string) []string {
	path := []string{target}
	for v := target; v != source; {
		p, ok := prev[v]
		if !ok || p == "" {
			return nil
		}
		path = append(path, p)
		v = p
		if len(path) > len(prev)+1 {
			return nil
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func formatDist(d int64) string {
	if d == Unreachable {
		return "∞"
	}
	return fmt.Sprintf("%d", d)
}

func copyDist(m map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyPrev(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// nodeItem represents a vertex and its tentative distance in the heap.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id for determinism.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
