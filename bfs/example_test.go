package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/bfs"
	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/playback"
)

// ExampleGenerator steps through the first few BFS events, then finishes the
// operation in one jump.
func ExampleGenerator() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	sink := playback.SinkFuncs[bfs.Snapshot]{
		Apply: func(ev playback.Event[bfs.Snapshot]) {
			fmt.Printf("%d: %s\n", ev.Line, ev.Message)
		},
		Finalize: func(op *playback.Operation[bfs.Snapshot]) {
			fmt.Println(op.Summary)
		},
	}
	r := playback.NewRunner(bfs.Generator(g, "A"), sink)

	r.Step()
	r.Step()
	r.FinishCurrent()

	// Output:
	// 1: enqueue A at depth 0
	// 2: visit A (depth 0)
	// 5: done: visited 3 of 3 vertices
	// bfs from A visited 3 of 3 vertices
}
