package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvltrace/bfs"
	"github.com/katalvlaran/lvltrace/builder"
)

// BenchmarkTrace_Chain measures a traced BFS along a 500-vertex path.
func BenchmarkTrace_Chain(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(500))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Trace(g, "0")
	}
}

// BenchmarkTrace_Grid runs a traced BFS on a 20×20 grid (400 vertices, 760 edges).
func BenchmarkTrace_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(20, 20))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Trace(g, "0,0", bfs.WithTarget("19,19"))
	}
}
