package flow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/playback"
)

// Trace computes the maximum flow from source to sink with Edmonds–Karp
// (BFS for shortest augmenting paths) and records every search and
// augmentation. Edge weights are capacities; parallel edges are summed,
// self-loops ignored, and an undirected edge carries capacity both ways.
//
// Preconditions and validation (in order):
//  1. g must be non-nil and weighted (ErrGraphNil, ErrUnweightedGraph).
//  2. source and sink must exist and differ (ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink).
//  3. No edge may have negative capacity (EdgeError).
//
// Searches visit neighbors in vertex-ID order, so the trace is deterministic.
//
// Complexity: O(V · E²) for the search, plus O(V + E) per emitted Event.
func Trace(g *core.Graph, source, sink string, opts ...Option) (*playback.Operation[Snapshot], error) {
	// 1) Options and graph
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	// 2) Terminals
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if !g.HasVertex(sink) {
		return nil, fmt.Errorf("%w: %q", ErrSinkNotFound, sink)
	}
	if source == sink {
		return nil, fmt.Errorf("%w: %q", ErrSourceIsSink, source)
	}

	// 3) Residual network
	residual, err := buildCapMap(g)
	if err != nil {
		return nil, err
	}

	n := &network{
		source:   source,
		sink:     sink,
		vertices: g.Vertices(),
		residual: residual,
		flow:     make(map[string]map[string]int64, len(residual)),
		trace:    playback.NewTrace[Snapshot](Kind),
	}
	n.trace.Emit(LineInit, n.snapshot(nil, 0, nil), "residual network: %d edges, source %s, sink %s", g.EdgeCount(), source, sink)

	// 4) Augment until no path remains
	complete := true
	for {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if o.MaxAugmentations > 0 && len(n.paths) >= o.MaxAugmentations {
			complete = false
			break
		}
		path, bottleneck := n.augmentingPath()
		if path == nil {
			break
		}
		n.trace.Emit(LineSearch, n.snapshot(path, bottleneck, nil), "found path %s, bottleneck %d", joinPath(path), bottleneck)
		n.augment(path, bottleneck)
		n.trace.Emit(LineAugment, n.snapshot(path, bottleneck, nil), "push %d along %s, total %d", bottleneck, joinPath(path), n.total)
	}

	return n.finish(complete), nil
}

// Generator binds Trace to its inputs for a playback.Runner.
func Generator(g *core.Graph, source, sink string, opts ...Option) playback.Generator[Snapshot] {
	return func() (*playback.Operation[Snapshot], error) {
		return Trace(g, source, sink, opts...)
	}
}

// network holds the mutable state of a single traced run.
type network struct {
	source, sink string
	vertices     []string
	residual     map[string]map[string]int64
	flow         map[string]map[string]int64
	total        int64
	paths        [][]string
	trace        *playback.Trace[Snapshot]
}

// augmentingPath runs BFS over positive residual arcs and returns the
// shortest source→sink path with its bottleneck, or nil if none exists.
func (n *network) augmentingPath() ([]string, int64) {
	parent := map[string]string{n.source: ""}
	queue := []string{n.source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range sortedKeys(n.residual[u]) {
			if _, seen := parent[v]; seen || n.residual[u][v] <= 0 {
				continue
			}
			parent[v] = u
			if v == n.sink {
				return n.pathTo(parent)
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

// pathTo rebuilds the path ending at sink and its bottleneck capacity.
func (n *network) pathTo(parent map[string]string) ([]string, int64) {
	path := []string{n.sink}
	bottleneck := int64(-1)
	for v := n.sink; v != n.source; {
		u := parent[v]
		if c := n.residual[u][v]; bottleneck < 0 || c < bottleneck {
			bottleneck = c
		}
		path = append(path, u)
		v = u
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, bottleneck
}

// augment pushes b units along path, cancelling opposite flow first.
func (n *network) augment(path []string, b int64) {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		n.residual[u][v] -= b
		addCap(n.residual, v, u, b)

		push := b
		if back := n.flow[v][u]; back > 0 {
			cancel := min(back, push)
			n.flow[v][u] -= cancel
			push -= cancel
		}
		if push > 0 {
			addCap(n.flow, u, v, push)
		}
	}
	n.total += b
	n.paths = append(n.paths, append([]string(nil), path...))
}

// minCut returns the vertices reachable from source in the residual network.
func (n *network) minCut() []string {
	seen := map[string]bool{n.source: true}
	queue := []string{n.source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, c := range n.residual[u] {
			if c > 0 && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	cut := make([]string, 0, len(seen))
	for v := range seen {
		cut = append(cut, v)
	}
	sort.Strings(cut)

	return cut
}

// finish emits the closing Event and seals the Operation.
func (n *network) finish(complete bool) *playback.Operation[Snapshot] {
	res := Result{
		Source:   n.source,
		Sink:     n.sink,
		MaxFlow:  n.total,
		Flow:     positive(n.flow),
		Paths:    n.paths,
		Complete: complete,
	}
	if res.Paths == nil {
		res.Paths = [][]string{}
	}

	if !complete {
		n.trace.Emit(LineDone, n.snapshot(nil, 0, nil), "stop after %d augmentations: flow %d", len(n.paths), n.total)
		summary := fmt.Sprintf("flow %s→%s is at least %d", n.source, n.sink, n.total)
		return n.trace.Operation(summary, res)
	}

	res.Cut = n.minCut()
	n.trace.Emit(LineDone, n.snapshot(nil, 0, res.Cut), "no augmenting path: max flow %d, cut {%s}", n.total, strings.Join(res.Cut, ","))
	summary := fmt.Sprintf("max flow %s→%s is %d", n.source, n.sink, n.total)

	return n.trace.Operation(summary, res)
}

// snapshot deep-copies the current state.
func (n *network) snapshot(path []string, bottleneck int64, cut []string) Snapshot {
	return Snapshot{
		Residual:   positive(n.residual),
		Flow:       positive(n.flow),
		Path:       append([]string(nil), path...),
		Bottleneck: bottleneck,
		Total:      n.total,
		Cut:        append([]string(nil), cut...),
	}
}

func joinPath(path []string) string { return strings.Join(path, "→") }
