package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/playback"
)

// TraceKruskal computes the Minimum Spanning Tree of an undirected, weighted
// graph and records every edge it considers, accepts or rejects.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil, directed or unweighted.
//   - ErrDisconnected : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate and retrieve sorted vertex IDs.
//  2. Collect all edges, skip self-loops, stable-sort by weight.
//  3. Initialize the disjoint-set forest.
//  4. Walk sorted edges: accept when endpoints are in different sets, else reject.
//  5. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) for the search, plus O(V + E) per Event.
func TraceKruskal(graph *core.Graph) (*playback.Operation[Snapshot], error) {
	// 1. Validate
	vertices, err := validate(graph)
	if err != nil {
		return nil, err
	}

	// 2. Collect and sort edges
	rank := edgeRank(graph)
	var queue []Candidate
	for _, e := range graph.Edges() {
		if e.From == e.To {
			continue
		}
		queue = append(queue, Candidate{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight})
	}
	sortCandidates(queue, rank)

	// 3. Disjoint sets
	k := &kruskal{
		vertices: vertices,
		dsu:      newDSU(vertices),
		queue:    queue,
		trace:    playback.NewTrace[Snapshot](MethodKruskal),
	}
	k.trace.Emit(LineSort, k.snapshot(""), "sort %d edges by weight", len(queue))

	// 4. Walk edges
	for len(k.queue) > 0 && len(k.tree) < len(vertices)-1 {
		c := k.queue[0]
		k.queue = k.queue[1:]
		k.trace.Emit(LineConsider, k.snapshot(c.ID), "consider %s–%s (w=%d)", c.From, c.To, c.Weight)

		if !k.dsu.union(c.From, c.To) {
			k.trace.Emit(LineReject, k.snapshot(c.ID), "reject %s–%s (w=%d): %s and %s already connected", c.From, c.To, c.Weight, c.From, c.To)
			continue
		}
		e, err := graph.GetEdge(c.ID)
		if err != nil {
			return nil, err
		}
		k.tree = append(k.tree, *e)
		k.total += c.Weight
		k.trace.Emit(LineAccept, k.snapshot(c.ID), "accept %s–%s (w=%d), total %d", c.From, c.To, c.Weight, k.total)
	}

	// 5. Connectivity check
	if len(k.tree) < len(vertices)-1 {
		return nil, fmt.Errorf("%w: spanning forest has %d of %d edges", ErrDisconnected, len(k.tree), len(vertices)-1)
	}
	k.trace.Emit(LineDone, k.snapshot(""), "tree complete: %d edges, total weight %d", len(k.tree), k.total)

	res := Result{Method: MethodKruskal, Edges: k.tree, Total: k.total}
	if res.Edges == nil {
		res.Edges = []core.Edge{}
	}

	return k.trace.Operation(summary(MethodKruskal, res.Edges, k.total), res), nil
}

// kruskal holds the mutable state of a single traced run.
type kruskal struct {
	vertices []string
	dsu      *dsu
	queue    []Candidate
	tree     []core.Edge
	total    int64
	trace    *playback.Trace[Snapshot]
}

// snapshot deep-copies the current state.
func (k *kruskal) snapshot(edge string) Snapshot {
	tree := make([]string, len(k.tree))
	for i, e := range k.tree {
		tree[i] = e.ID
	}
	comp := make(map[string]string, len(k.vertices))
	for _, v := range k.vertices {
		comp[v] = k.dsu.find(v)
	}

	return Snapshot{
		Tree:       tree,
		Total:      k.total,
		Candidates: append([]Candidate{}, k.queue...),
		Component:  comp,
		Edge:       edge,
	}
}

// dsu is a disjoint-set forest with path compression and union by rank.
type dsu struct {
	parent map[string]string
	rank   map[string]int
}

func newDSU(vertices []string) *dsu {
	d := &dsu{
		parent: make(map[string]string, len(vertices)),
		rank:   make(map[string]int, len(vertices)),
	}
	for _, v := range vertices {
		d.parent[v] = v
	}

	return d
}

// find walks to the root, halving the path as it goes.
func (d *dsu) find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v. It reports false if they were already joined.
func (d *dsu) union(u, v string) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}

	return true
}
