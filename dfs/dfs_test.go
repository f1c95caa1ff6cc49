package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/dfs"
	"github.com/katalvlaran/lvltrace/playback"
)

// buildTree returns the undirected graph A–B, A–C, B–D plus isolated E.
func buildTree(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("E"))
	return g
}

func messages(op *playback.Operation[dfs.Snapshot]) []string {
	out := make([]string, len(op.Events))
	for i, ev := range op.Events {
		out[i] = ev.Message
	}
	return out
}

func dfsResult(t *testing.T, op *playback.Operation[dfs.Snapshot]) dfs.DFSResult {
	t.Helper()
	res, ok := op.Result.(dfs.DFSResult)
	require.True(t, ok)
	return res
}

func TestTrace_Errors(t *testing.T) {
	_, err := dfs.Trace(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Trace(buildTree(t), "Z")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.Trace(buildTree(t), "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrace_EventSequence(t *testing.T) {
	op, err := dfs.Trace(buildTree(t), "A")
	require.NoError(t, err)
	assert.Equal(t, dfs.Kind, op.Kind)

	assert.Equal(t, []string{
		"enter A (depth 0)",
		"enter B via A→B (depth 1)",
		"enter D via B→D (depth 2)",
		"exit D",
		"exit B",
		"enter C via A→C (depth 1)",
		"exit C",
		"exit A",
		"done: 4 vertices finished",
	}, messages(op))

	res := dfsResult(t, op)
	assert.Equal(t, []string{"D", "B", "C", "A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "C": "A", "D": "B"}, res.Parent)
	assert.Equal(t, "dfs finished 4 of 5 vertices", op.Summary)

	// While D is being entered the gray stack is the path A, B, D.
	enterD := op.Events[2].Snapshot
	assert.Equal(t, []string{"A", "B", "D"}, enterD.Stack)
	assert.Equal(t, dfs.Gray, enterD.State["B"])
	assert.Equal(t, dfs.White, enterD.State["C"])
	assert.Equal(t, dfs.White, enterD.State["E"])

	last, _ := op.Last()
	assert.Empty(t, last.Snapshot.Stack)
	assert.Equal(t, dfs.Black, last.Snapshot.State["A"])
}

func TestTrace_FullTraversal(t *testing.T) {
	op, err := dfs.Trace(buildTree(t), "", dfs.WithFullTraversal())
	require.NoError(t, err)

	res := dfsResult(t, op)
	assert.Equal(t, []string{"D", "B", "C", "A", "E"}, res.Order)
	assert.Equal(t, 0, res.Depth["E"])
	assert.Equal(t, "dfs finished 5 of 5 vertices", op.Summary)
}

func TestTrace_MaxDepthAndFilter(t *testing.T) {
	op, err := dfs.Trace(buildTree(t), "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, dfsResult(t, op).Order)
	assert.Contains(t, messages(op), "depth limit 1 reached at B")

	op, err = dfs.Trace(buildTree(t), "A", dfs.WithFilterNeighbor(func(id string) bool { return id != "B" }))
	require.NoError(t, err)
	res := dfsResult(t, op)
	assert.Equal(t, []string{"C", "A"}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
	assert.Contains(t, messages(op), "skip A→B (filtered)")
}
