// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Vertex catalog protected by muVert; adjacency bootstrap under muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	// Bootstrap the adjacency bucket so Neighbors never sees a missing key.
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether id exists. Empty IDs are never present.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
