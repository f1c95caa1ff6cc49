// Package playback drives the reveal of algorithm traces to a presentation sink.
//
// A trace generator computes an Operation eagerly: an ordered list of Events,
// each carrying a complete, self-contained snapshot of algorithm state, plus
// aggregate result fields. A Runner owns at most one pending Operation and
// reveals its Events according to one of four playback modes:
//
//   - Step:          reveal exactly one Event per call, strictly in order.
//   - RunAnimated:   reveal Events one by one with a delay between them.
//   - RunInstant:    prepare a fresh Operation and jump straight to its end.
//   - FinishCurrent: reveal only the last Event of the pending Operation.
//
// FinishCurrent is sound only because snapshots are full state, never deltas:
// the final Event alone renders the complete end state.
//
// Lifecycle:
//
//	Empty ──prepare──▶ Prepared ⇄ Animating ──all Events revealed──▶ finalize ──▶ Empty
//
// Each Operation is finalized exactly once. A cancelled animation leaves the
// Operation paused at its current index; the next Step, FinishCurrent or
// EnsureNoPending resumes or completes it.
//
// Cancellation:
//
//	Every call that logically stops playback (Step, Stop, FinishCurrent and a new
//	RunAnimated) bumps a generation token. The animation loop captures the token
//	when it starts and exits silently on its next wake-up once the token moves on.
//
// Concurrency:
//
//	All state changes and all Sink/hook callbacks happen under a single mutex, so
//	ApplyEvent and FinalizeOperation never overlap. The only suspension point is
//	the delay between animated Events, taken with the mutex released. Callbacks
//	must not call back into the Runner.
//
// Errors:
//
//	The Runner never returns errors. A generator that cannot produce an Operation
//	is a normal outcome reported through the OnNothingPrepared hook; redundant
//	Stop/FinishCurrent calls are no-ops. Panics raised by Sink callbacks
//	propagate unchanged.
package playback
