package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltrace/dijkstra"
	"github.com/katalvlaran/lvltrace/gridgraph"
)

// island grid:
//
//	1 1 0
//	0 3 0
//	2 0 1
var island = [][]int64{
	{1, 1, 0},
	{0, 3, 0},
	{2, 0, 1},
}

func TestNew_Validation(t *testing.T) {
	_, err := gridgraph.New(nil, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.New([][]int64{{}}, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.New([][]int64{{1, 2}, {3}}, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
	assert.Contains(t, err.Error(), "row 1")
}

func TestNew_CopiesInput(t *testing.T) {
	in := [][]int64{{1, 0}}
	gg, err := gridgraph.New(in, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	in[0][1] = 9
	assert.False(t, gg.Land(1, 0))
	assert.True(t, gg.Land(0, 0))
	assert.False(t, gg.Land(-1, 0))
	assert.Equal(t, 2, gg.Width)
	assert.Equal(t, 1, gg.Height)
}

func TestToCoreGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.New(island, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	g, err := gg.ToCoreGraph()
	require.NoError(t, err)
	assert.False(t, g.Weighted())
	assert.False(t, g.Directed())
	assert.Equal(t, []string{"0,0", "0,2", "1,0", "1,1", "2,2"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("0,0", "1,0"))
	assert.True(t, g.HasEdge("1,1", "1,0"))
}

func TestToCoreGraph_Conn8Weighted(t *testing.T) {
	gg, err := gridgraph.New(island, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn8, Weighted: true})
	require.NoError(t, err)

	g, err := gg.ToCoreGraph()
	require.NoError(t, err)
	assert.True(t, g.Weighted())
	assert.Equal(t, 5, g.EdgeCount())

	weights := map[string]int64{}
	for _, e := range g.Edges() {
		weights[e.From+"-"+e.To] = e.Weight
	}
	assert.Equal(t, map[string]int64{
		"0,0-1,0": 1,
		"0,0-1,1": 3,
		"1,0-1,1": 3,
		"1,1-2,2": 3,
		"1,1-0,2": 3,
	}, weights)

	op, err := dijkstra.Trace(g, dijkstra.Source("0,0"), dijkstra.Target("0,2"))
	require.NoError(t, err)
	res := op.Result.(dijkstra.Result)
	assert.EqualValues(t, 6, res.Distance)
	assert.Equal(t, []string{"0,0", "1,1", "0,2"}, res.Path)
}

func TestToCoreGraph_NoLand(t *testing.T) {
	gg, err := gridgraph.New([][]int64{{0, 0}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	_, err = gg.ToCoreGraph()
	assert.ErrorIs(t, err, gridgraph.ErrNoLand)
}

func TestConnectedComponents(t *testing.T) {
	gg, err := gridgraph.New(island, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0,0", "1,0", "1,1"}, {"0,2"}, {"2,2"}}, gg.ConnectedComponents())

	gg, err = gridgraph.New(island, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn8})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0,0", "1,0", "1,1", "2,2", "0,2"}}, gg.ConnectedComponents())

	gg, err = gridgraph.New(island, gridgraph.GridOptions{LandThreshold: 2})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1,1"}, {"0,2"}}, gg.ConnectedComponents())
}
