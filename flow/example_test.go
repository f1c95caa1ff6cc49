package flow_test

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/flow"
	"github.com/katalvlaran/lvltrace/playback"
)

// ExampleGenerator steps through the first augmentation of a two-route
// network and then jumps to the end.
func ExampleGenerator() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "A", 4)
	_, _ = g.AddEdge("A", "T", 3)
	_, _ = g.AddEdge("S", "T", 1)

	sink := playback.SinkFuncs[flow.Snapshot]{
		Apply:    func(ev playback.Event[flow.Snapshot]) { fmt.Println(ev.Message) },
		Finalize: func(op *playback.Operation[flow.Snapshot]) { fmt.Println(op.Summary) },
	}
	r := playback.NewRunner(flow.Generator(g, "S", "T"), sink)
	r.Step()
	r.Step()
	r.FinishCurrent()

	// Output:
	// residual network: 3 edges, source S, sink T
	// found path S→T, bottleneck 1
	// no augmenting path: max flow 4, cut {A,S}
	// max flow S→T is 4
}
