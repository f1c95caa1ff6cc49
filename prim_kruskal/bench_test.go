package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/lvltrace/builder"
	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/prim_kruskal"
)

// benchGraph builds a weighted 20×20 grid once per benchmark.
func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightRange(1, 20)},
		builder.Grid(20, 20),
	)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkTraceKruskal measures the traced Kruskal run on a 400-vertex grid.
func BenchmarkTraceKruskal(b *testing.B) {
	g := benchGraph(b) // pre-build graph once
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.TraceKruskal(g)
	}
}

// BenchmarkTracePrim measures the traced Prim run from the top-left corner.
func BenchmarkTracePrim(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.TracePrim(g, "0,0")
	}
}
