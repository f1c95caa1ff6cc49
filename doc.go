// Package lvltrace plays back algorithm traces one step at a time.
//
// Every tracer records an algorithm run as a playback.Operation: an ordered
// list of Events, each carrying a procedure line, a human-readable message
// and a full snapshot of the algorithm state. A playback.Runner feeds those
// Events to a Sink stepwise, on a timer, or all at once.
//
// Layout:
//
//	playback/     Event, Operation, Trace, Runner and Sink
//	logging/      structured logger used by the runner and the CLI
//	core/         the Graph type the graph tracers run on
//	builder/      deterministic graph topologies (path, cycle, grid, random, …)
//	gridgraph/    cell maps as graphs
//	bfs/ dfs/ dijkstra/ prim_kruskal/ flow/
//	              graph tracers
//	segtree/ trie/ strmatch/ geometry/
//	              data-structure and string/geometry tracers
//	store/        SQLite archive of finalized operations
//	internal/     input documents and the lvltrace command
//	cmd/lvltrace/ the executable
//
// Quick start:
//
//	op, err := dijkstra.Trace(g, dijkstra.Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ev := range op.Events {
//	    fmt.Println(ev.Line, ev.Message)
//	}
package lvltrace
