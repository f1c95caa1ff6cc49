package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/playback"
)

// TracePrim computes the Minimum Spanning Tree of an undirected, weighted
// graph by growing outwards from root, recording every candidate edge popped
// from the min-heap and whether it joined the tree.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil, directed or unweighted.
//   - ErrEmptyRoot          : if root is empty.
//   - core.ErrVertexNotFound: if root does not exist in the graph.
//   - ErrDisconnected       : if |V| == 0 or the graph is not fully connected.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited and push its incident edges.
//  3. Pop the lightest candidate; reject it if its far end is visited,
//     otherwise accept it and push the new vertex's edges.
//  4. Fewer than |V|-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log V) for the search, plus O(V + E) per Event.
func TracePrim(graph *core.Graph, root string) (*playback.Operation[Snapshot], error) {
	// 1. Validate
	vertices, err := validate(graph)
	if err != nil {
		return nil, err
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, fmt.Errorf("%w: root %q", core.ErrVertexNotFound, root)
	}

	p := &prim{
		graph:   graph,
		n:       len(vertices),
		visited: make(map[string]bool, len(vertices)),
		pq:      &edgePQ{rank: edgeRank(graph)},
		trace:   playback.NewTrace[Snapshot](MethodPrim),
	}
	heap.Init(p.pq)

	// 2. Seed from root
	pushed, err := p.visit(root)
	if err != nil {
		return nil, err
	}
	p.trace.Emit(LineSort, p.snapshot(""), "start at %s, %d candidate edges", root, pushed)

	// 3. Grow
	for p.pq.Len() > 0 && len(p.tree) < p.n-1 {
		c := heap.Pop(p.pq).(Candidate)
		p.trace.Emit(LineConsider, p.snapshot(c.ID), "consider %s–%s (w=%d)", c.From, c.To, c.Weight)
		if p.visited[c.To] {
			p.trace.Emit(LineReject, p.snapshot(c.ID), "reject %s–%s (w=%d): %s already in tree", c.From, c.To, c.Weight, c.To)
			continue
		}

		e, err := graph.GetEdge(c.ID)
		if err != nil {
			return nil, err
		}
		p.tree = append(p.tree, *e)
		p.total += c.Weight
		if _, err = p.visit(c.To); err != nil {
			return nil, err
		}
		p.trace.Emit(LineAccept, p.snapshot(c.ID), "accept %s–%s (w=%d), total %d", c.From, c.To, c.Weight, p.total)
	}

	// 4. Connectivity check
	if len(p.tree) < p.n-1 {
		return nil, fmt.Errorf("%w: reached %d of %d vertices from %s", ErrDisconnected, len(p.tree)+1, p.n, root)
	}
	p.trace.Emit(LineDone, p.snapshot(""), "tree complete: %d edges, total weight %d", len(p.tree), p.total)

	res := Result{Method: MethodPrim, Root: root, Edges: p.tree, Total: p.total}
	if res.Edges == nil {
		res.Edges = []core.Edge{}
	}

	return p.trace.Operation(summary(MethodPrim, res.Edges, p.total), res), nil
}

// prim holds the mutable state of a single traced run.
type prim struct {
	graph   *core.Graph
	n       int
	visited map[string]bool
	pq      *edgePQ
	tree    []core.Edge
	total   int64
	trace   *playback.Trace[Snapshot]
}

// visit marks v as spanned and pushes its edges toward unvisited vertices.
// It returns the number of edges pushed.
func (p *prim) visit(v string) (int, error) {
	p.visited[v] = true
	edges, err := p.graph.Neighbors(v)
	if err != nil {
		return 0, err
	}
	pushed := 0
	for _, e := range edges {
		to := e.Other(v)
		if to == v || p.visited[to] {
			continue
		}
		heap.Push(p.pq, Candidate{ID: e.ID, From: v, To: to, Weight: e.Weight})
		pushed++
	}

	return pushed, nil
}

// snapshot deep-copies the current state; candidates are listed in pop order.
func (p *prim) snapshot(edge string) Snapshot {
	tree := make([]string, len(p.tree))
	for i, e := range p.tree {
		tree[i] = e.ID
	}
	in := make(map[string]bool, len(p.visited))
	for k, v := range p.visited {
		in[k] = v
	}
	cands := append([]Candidate{}, p.pq.items...)
	sortCandidates(cands, p.pq.rank)

	return Snapshot{
		Tree:       tree,
		Total:      p.total,
		Candidates: cands,
		InTree:     in,
		Edge:       edge,
	}
}

// edgePQ implements heap.Interface for a min-heap of Candidates ordered by
// Weight, then by edge insertion rank.
type edgePQ struct {
	items []Candidate
	rank  map[string]int
}

// Len returns the number of edges in the priority queue.
func (pq *edgePQ) Len() int { return len(pq.items) }

// Less compares by weight, breaking ties by insertion rank.
func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return pq.rank[a.ID] < pq.rank[b.ID]
}

// Swap swaps elements at indices i and j.
func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a new Candidate to the heap.
func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(Candidate)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there).
func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	c := old[n-1]
	pq.items = old[:n-1]

	return c
}
