// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltrace/core"
)

func TestAddVertex_IdempotentAndValidated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("Z"))
}

func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("", "A", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	id, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)

	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected edges are mirrored")

	multi := core.NewGraph(core.WithMultiEdges(), core.WithLoops(), core.WithWeighted())
	_, err = multi.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "A", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, multi.EdgeCount())
	assert.True(t, multi.Multigraph())
	assert.True(t, multi.Looped())
}

func TestEdges_InsertionOrderBeyondNineIDs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%02d", i), fmt.Sprintf("v%02d", i+1), 0)
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, fmt.Sprintf("e%d", i+1), e.ID)
	}
}

func TestNeighbors_DirectedAndUndirected(t *testing.T) {
	d := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = d.AddEdge("A", "B", 1)
	_, _ = d.AddEdge("C", "A", 2)

	out, err := d.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].To)
	assert.False(t, d.HasEdge("B", "A"))

	u := core.NewGraph(core.WithWeighted())
	_, _ = u.AddEdge("A", "B", 1)
	_, _ = u.AddEdge("C", "A", 2)
	ids, err := u.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)
	assert.True(t, u.HasEdge("B", "A"))

	_, err = u.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = u.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestEdge_Other(t *testing.T) {
	e := &core.Edge{From: "A", To: "B"}
	assert.Equal(t, "B", e.Other("A"))
	assert.Equal(t, "A", e.Other("B"))
}

func TestGetEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	id, _ := g.AddEdge("A", "B", 7)
	e, err := g.GetEdge(id)
	require.NoError(t, err)
	assert.EqualValues(t, 7, e.Weight)

	_, err = g.GetEdge("e99")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestConcurrentMutation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, _ = g.AddEdge(fmt.Sprintf("w%d", w), fmt.Sprintf("n%d", i), int64(i))
				_ = g.Vertices()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 400, g.EdgeCount())
	assert.Equal(t, 58, g.VertexCount())
}
