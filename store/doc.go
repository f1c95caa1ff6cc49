// Package store archives finalized playback Operations in SQLite.
//
// The archive is write-mostly: a Recorder wraps any playback.Sink and saves
// one Record per FinalizeOperation call; the CLI "history" command lists the
// saved Records. The Runner itself never reads from the archive.
//
// Records hold the Operation's Result and its final Snapshot as JSON text, so
// an archived trace can be inspected without the type that produced it.
//
// Example:
//
//	s, err := store.Open("traces.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//	rec := store.NewRecorder[dijkstra.Snapshot](ctx, s, sink)
//	r := playback.NewRunner(gen, rec)
package store
