// File: runner.go
// Role: Runner state machine: prepare, Step, RunAnimated, RunInstant,
//       FinishCurrent, Stop, EnsureNoPending and progress queries.
// Concurrency:
//   - Every state transition and every Sink/hook call runs under r.mu.
//   - The animation loop sleeps with r.mu released; that is the only suspension point.
// Invariants:
//   - 0 <= next <= len(pending.Events); pending == nil implies next == 0.
//   - pending is cleared before FinalizeOperation runs, so finalize fires once.

package playback

import (
	"context"
	"sync"
	"time"

	"github.com/katalvlaran/lvltrace/logging"
)

// Runner reveals the Events of at most one pending Operation to a Sink.
// The zero value is not usable; construct with NewRunner.
type Runner[S any] struct {
	mu   sync.Mutex
	gen  Generator[S]
	sink Sink[S]
	opts Options
	log  logging.Logger

	pending    *Operation[S] // nil in the Empty state
	next       int           // index of the next Event to reveal
	animating  bool          // an animation loop owns the current generation
	generation uint64        // bumped by every call that stops playback
}

// NewRunner returns an empty Runner pulling Operations from gen and revealing
// them to sink.
//
// Complexity: O(len(opts)).
func NewRunner[S any](gen Generator[S], sink Sink[S], opts ...Option) *Runner[S] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Runner[S]{
		gen:  gen,
		sink: sink,
		opts: cfg,
		log:  cfg.Logger,
	}
}

// Step reveals exactly one previously unrevealed Event.
//
// Implementation:
//   - Stage 1: Cancel any in-flight animation.
//   - Stage 2: Prepare an Operation if none is pending; return if the generator yields nothing.
//   - Stage 3: If every Event is already revealed (zero-event Operation or a paused
//     animation that reached the end), finalize and return.
//   - Stage 4: Reveal the Event at the current index; finalize if it was the last one.
func (r *Runner[S]) Step() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancelLocked()
	if !r.prepareLocked() {
		return
	}

	total := len(r.pending.Events)
	if r.next >= total {
		r.finalizeLocked()
		return
	}

	r.revealLocked(r.next)
	if r.next == total {
		r.finalizeLocked()
	}
}

// RunAnimated starts revealing a freshly prepared Operation one Event at a
// time, sleeping Options.Delay() after each Event. It returns a channel that
// is closed once the animation loop exits, whether by completion, by
// cancellation or by ctx being done.
//
// Implementation:
//   - Stage 1: If an animation is already running, do nothing.
//   - Stage 2: Drive any stale pending Operation to completion (EnsureNoPending).
//   - Stage 3: Prepare a new Operation; do nothing if the generator yields none.
//   - Stage 4: Capture a new generation token and start the loop.
//
// A no-op call returns an already closed channel. Cancelling ctx stops the
// loop like Stop does: the Operation stays paused at its current index.
func (r *Runner[S]) RunAnimated(ctx context.Context) <-chan struct{} {
	if ctx == nil {
		ctx = context.Background()
	}
	done := make(chan struct{})

	r.mu.Lock()
	if r.animating {
		r.mu.Unlock()
		close(done)
		return done
	}
	r.ensureNoPendingLocked()
	if !r.prepareLocked() {
		r.mu.Unlock()
		close(done)
		return done
	}
	r.generation++
	token := r.generation
	r.animating = true
	r.log.Debug("animation started", "operation_id", r.pending.ID, "kind", r.pending.Kind, "total", len(r.pending.Events))
	r.mu.Unlock()

	go r.animate(ctx, token, done)

	return done
}

// animate is the cooperative playback loop owned by generation token.
func (r *Runner[S]) animate(ctx context.Context, token uint64, done chan<- struct{}) {
	defer close(done)

	for {
		r.mu.Lock()
		if r.generation != token {
			r.log.Debug("animation cancelled", "index", r.next)
			r.mu.Unlock()
			return
		}
		if r.next >= len(r.pending.Events) {
			r.animating = false
			r.finalizeLocked()
			r.mu.Unlock()
			return
		}
		r.revealLocked(r.next)
		r.mu.Unlock()

		if !sleep(ctx, r.opts.Delay()) {
			r.mu.Lock()
			if r.generation == token {
				r.animating = false
				r.log.Debug("animation interrupted by context", "index", r.next, "error", ctx.Err())
			}
			r.mu.Unlock()
			return
		}
	}
}

// RunInstant finishes any stale Operation, prepares a new one and jumps
// straight to its end: only the final Event is revealed before finalize.
func (r *Runner[S]) RunInstant() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureNoPendingLocked()
	if !r.prepareLocked() {
		return
	}
	r.finishLocked()
}

// FinishCurrent cancels any animation and completes the pending Operation by
// revealing only its last Event, then finalizes it. With nothing pending it
// fires the OnNothingToFinish hook instead.
func (r *Runner[S]) FinishCurrent() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.finishLocked()
}

// Stop cancels any in-flight animation without finalizing or discarding the
// pending Operation. Idempotent.
func (r *Runner[S]) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancelLocked()
}

// EnsureNoPending forces a pending Operation, however far it has progressed,
// to completion via FinishCurrent. No-op on an empty Runner.
func (r *Runner[S]) EnsureNoPending() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureNoPendingLocked()
}

// HasPendingOperation reports whether an Operation is prepared but not yet finalized.
func (r *Runner[S]) HasPendingOperation() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pending != nil
}

// CurrentEventIndex returns the index of the next Event to reveal (0 when empty).
func (r *Runner[S]) CurrentEventIndex() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.next
}

// TotalEventCount returns the Event count of the pending Operation (0 when empty).
func (r *Runner[S]) TotalEventCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending == nil {
		return 0
	}

	return len(r.pending.Events)
}

// IsAnimating reports whether an animation loop currently owns playback.
func (r *Runner[S]) IsAnimating() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.animating
}

// Pending returns the pending Operation, or nil.
func (r *Runner[S]) Pending() *Operation[S] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pending
}

// cancelLocked invalidates the running animation loop, if any.
func (r *Runner[S]) cancelLocked() {
	r.generation++
	r.animating = false
}

// prepareLocked makes sure an Operation is pending. It reports false when the
// generator could not produce one.
func (r *Runner[S]) prepareLocked() bool {
	if r.pending != nil {
		return true
	}

	op, err := r.gen()
	if err != nil || op == nil {
		r.log.Debug("nothing prepared", "error", err)
		if r.opts.OnNothingPrepared != nil {
			r.opts.OnNothingPrepared(err)
		}
		return false
	}

	r.pending = op
	r.next = 0
	r.log.Debug("operation prepared", "operation_id", op.ID, "kind", op.Kind, "total", len(op.Events))
	if r.opts.OnPrepared != nil {
		r.opts.OnPrepared(op.Info())
	}
	r.sink.RefreshMetrics()

	return true
}

// revealLocked applies Event i and advances the cursor past it.
func (r *Runner[S]) revealLocked(i int) {
	r.sink.ApplyEvent(r.pending.Events[i])
	r.next = i + 1
	r.sink.RefreshMetrics()
}

// finishLocked implements FinishCurrent with r.mu held.
func (r *Runner[S]) finishLocked() {
	r.cancelLocked()
	if r.pending == nil {
		r.log.Debug("nothing to finish")
		if r.opts.OnNothingToFinish != nil {
			r.opts.OnNothingToFinish()
		}
		return
	}

	// Snapshots are full state, so the last Event alone renders the end state.
	total := len(r.pending.Events)
	if r.next < total {
		r.revealLocked(total - 1)
	}
	r.finalizeLocked()
}

func (r *Runner[S]) ensureNoPendingLocked() {
	if r.pending != nil {
		r.finishLocked()
	}
}

// finalizeLocked hands the pending Operation to the Sink and returns to Empty.
func (r *Runner[S]) finalizeLocked() {
	op := r.pending
	r.pending = nil
	r.next = 0
	r.log.Debug("operation finalized", "operation_id", op.ID, "kind", op.Kind, "total", len(op.Events))
	r.sink.FinalizeOperation(op)
	r.sink.RefreshMetrics()
}

// sleep waits for d or until ctx is done. It reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
