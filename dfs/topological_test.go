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

func directed(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	return g
}

func topoResult(t *testing.T, op *playback.Operation[dfs.Snapshot]) dfs.TopoResult {
	t.Helper()
	res, ok := op.Result.(dfs.TopoResult)
	require.True(t, ok)
	return res
}

func TestTraceTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TraceTopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TraceTopologicalSort(core.NewGraph())
	assert.ErrorIs(t, err, dfs.ErrNotDirected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TraceTopologicalSort(directed(t, [2]string{"A", "B"}), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTraceTopologicalSort_Diamond(t *testing.T) {
	g := directed(t, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"})
	op, err := dfs.TraceTopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, dfs.KindTopological, op.Kind)

	assert.Equal(t, []string{
		"enter A",
		"enter B via A→B",
		"enter D via B→D",
		"exit D",
		"exit B",
		"enter C via A→C",
		"skip C→D: D already finished",
		"exit C",
		"exit A",
		"done: order A, C, B, D",
	}, messages(op))

	res := topoResult(t, op)
	assert.True(t, res.Acyclic)
	assert.NoError(t, res.Err())
	assert.Equal(t, []string{"A", "C", "B", "D"}, res.Order)
	assert.Equal(t, "topological order: A, C, B, D", op.Summary)
}

func TestTraceTopologicalSort_CycleStillProducesOperation(t *testing.T) {
	g := directed(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	op, err := dfs.TraceTopologicalSort(g)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"enter A",
		"enter B via A→B",
		"enter C via B→C",
		"back edge C→A: cycle A→B→C→A",
		"stop: cycle A→B→C→A",
	}, messages(op))

	res := topoResult(t, op)
	assert.False(t, res.Acyclic)
	assert.Empty(t, res.Order)
	assert.Equal(t, []string{"A", "B", "C", "A"}, res.Cycle)
	assert.ErrorIs(t, res.Err(), dfs.ErrCycleDetected)
	assert.Equal(t, "graph has a cycle: A→B→C→A", op.Summary)

	back := op.Events[3]
	assert.Equal(t, dfs.LineBack, back.Line)
	assert.Equal(t, []string{"A", "B", "C", "A"}, back.Snapshot.Cycle)
	assert.Equal(t, []string{"A", "B", "C"}, back.Snapshot.Stack)
}

func TestTraceTopologicalSort_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)

	op, err := dfs.TraceTopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, topoResult(t, op).Cycle)
}
