// Package dfs traces depth-first search (single-source and forest) on core.Graph.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus O(V) per emitted Event for the snapshot copy.
//   - Memory: O(V) for recursion stack and metadata maps, O(T·V) for a trace of T Events.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/playback"
)

// colors tracks vertex colors, the gray path and the post-order. Both
// tracers embed it to share snapshot construction.
type colors struct {
	state map[string]int
	stack []string
	order []string
	trace *playback.Trace[Snapshot]
}

func newColors(kind string, vertices []string) colors {
	c := colors{
		state: make(map[string]int, len(vertices)),
		order: make([]string, 0, len(vertices)),
		trace: playback.NewTrace[Snapshot](kind),
	}
	for _, v := range vertices {
		c.state[v] = White
	}

	return c
}

func (c *colors) enter(id string) {
	c.state[id] = Gray
	c.stack = append(c.stack, id)
}

func (c *colors) exit(id string) {
	c.state[id] = Black
	c.stack = c.stack[:len(c.stack)-1]
	c.order = append(c.order, id)
}

// snapshot deep-copies the current state.
func (c *colors) snapshot(current string, cycle []string) Snapshot {
	state := make(map[string]int, len(c.state))
	for k, v := range c.state {
		state[k] = v
	}

	return Snapshot{
		State:   state,
		Stack:   append([]string{}, c.stack...),
		Order:   append([]string{}, c.order...),
		Current: current,
		Cycle:   append([]string(nil), cycle...),
	}
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	colors
	graph   *core.Graph
	opts    DFSOptions
	depth   map[string]int
	parent  map[string]string
	skipped int
}

// Trace performs depth-first search on g and records every discovery,
// finish, filtered neighbor and depth cutoff. With WithFullTraversal it
// covers all components in vertex-ID order; otherwise it starts only from
// startID. The returned Operation's Result is a DFSResult.
func Trace(g *core.Graph, startID string, opts ...Option) (*playback.Operation[Snapshot], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify startID
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// 4. Initialize walker
	vertices := g.Vertices()
	w := &dfsWalker{
		colors: newColors(Kind, vertices),
		graph:  g,
		opts:   o,
		depth:  make(map[string]int, len(vertices)),
		parent: make(map[string]string, len(vertices)),
	}

	// 5. Traverse: forest or single tree
	roots := []string{startID}
	if o.FullTraversal {
		roots = vertices
	}
	for _, v := range roots {
		if w.state[v] != White {
			continue
		}
		if err := w.traverse(v, "", 0); err != nil {
			return nil, err
		}
	}

	// 6. Seal
	w.trace.Emit(LineDone, w.snapshot("", nil), "done: %d vertices finished", len(w.order))
	res := DFSResult{
		Order:            append([]string{}, w.order...),
		Depth:            w.depth,
		Parent:           w.parent,
		SkippedNeighbors: w.skipped,
	}
	summary := fmt.Sprintf("dfs finished %d of %d vertices", len(w.order), len(vertices))

	return w.trace.Operation(summary, res), nil
}

// Generator binds Trace to its inputs for a playback.Runner.
func Generator(g *core.Graph, startID string, opts ...Option) playback.Generator[Snapshot] {
	return func() (*playback.Operation[Snapshot], error) {
		return Trace(g, startID, opts...)
	}
}

// traverse visits vertex id at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id, parent string, depth int) error {
	// 1. Cancellation check
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	// 2. Mark visited and record depth
	w.enter(id)
	w.depth[id] = depth
	if parent != "" {
		w.parent[id] = parent
		w.trace.Emit(LineEnter, w.snapshot(id, nil), "enter %s via %s→%s (depth %d)", id, parent, id, depth)
	} else {
		w.trace.Emit(LineEnter, w.snapshot(id, nil), "enter %s (depth %d)", id, depth)
	}

	// 3. Depth limit: do not expand beyond MaxDepth
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		w.trace.Emit(LineEdge, w.snapshot(id, nil), "depth limit %d reached at %s", w.opts.MaxDepth, id)
	} else {
		// 4. Explore each neighbor in lexicographic order
		nbs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, nid := range nbs {
			if nid == id || w.state[nid] != White {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.skipped++
				w.trace.Emit(LineEdge, w.snapshot(id, nil), "skip %s→%s (filtered)", id, nid)
				continue
			}
			if err = w.traverse(nid, id, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Record finish order
	w.exit(id)
	w.trace.Emit(LineExit, w.snapshot(id, nil), "exit %s", id)

	return nil
}
