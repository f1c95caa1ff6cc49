// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount and
//       the adjacency views Neighbors/NeighborIDs.
// Determinism:
//   - Edges() and Neighbors() return edges in insertion order.
//   - NeighborIDs() returns IDs sorted lexicographically.
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under read lock.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix yields human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to, auto-creating missing endpoints.
//
// Steps:
//  1. Validate IDs, weight policy and loop policy.
//  2. Ensure both vertices exist.
//  3. Under muEdgeAdj, enforce the multi-edge policy and allocate the next ID.
//  4. Link adjacency; mirror undirected edges.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	seq := g.nextEdgeID
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, seq, 10))
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed, seq: seq}

	// 4) Store and link adjacency
	g.edges[eid] = e
	g.link(from, to, eid)
	if !e.Directed && from != to {
		g.link(to, from, eid)
	}

	return eid, nil
}

// link records eid in adjacency[from][to]. Caller holds muEdgeAdj.
func (g *Graph) link(from, to, eid string) {
	if _, ok := g.adjacency[from]; !ok {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if _, ok := g.adjacency[from][to]; !ok {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}

// HasEdge reports whether at least one edge leads from→to
// (either direction for undirected edges).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns the edge with the given ID.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order. Treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()

	sortBySeq(out)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges usable when leaving id: every outgoing directed
// edge and every incident undirected edge, in insertion order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil || (e.Directed && e.From != id) {
				continue
			}
			out = append(out, e)
		}
	}
	sortBySeq(out)

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable from id over one edge,
// sorted lexicographically.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		nb := e.Other(id)
		if _, ok := seen[nb]; ok {
			continue
		}
		seen[nb] = struct{}{}
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

func sortBySeq(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })
}
