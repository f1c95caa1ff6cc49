package playback_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltrace/playback"
)

// recordingSink captures every callback; safe for use from the animation goroutine.
type recordingSink struct {
	mu        sync.Mutex
	applied   []string
	finalized []*playback.Operation[string]
	refreshes int
	onApply   chan string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{onApply: make(chan string, 64)}
}

func (s *recordingSink) ApplyEvent(ev playback.Event[string]) {
	s.mu.Lock()
	s.applied = append(s.applied, ev.Snapshot)
	s.mu.Unlock()
	s.onApply <- ev.Snapshot
}

func (s *recordingSink) FinalizeOperation(op *playback.Operation[string]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalized = append(s.finalized, op)
}

func (s *recordingSink) RefreshMetrics() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshes++
}

func (s *recordingSink) Applied() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.applied...)
}

func (s *recordingSink) Finalized() []*playback.Operation[string] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*playback.Operation[string](nil), s.finalized...)
}

// makeOp builds an Operation whose Event snapshots are the given labels.
func makeOp(kind string, labels ...string) *playback.Operation[string] {
	tr := playback.NewTrace[string](kind)
	for i, l := range labels {
		tr.Emit(i+1, l, "reveal %s", l)
	}
	return tr.Operation(kind+" done", len(labels))
}

// sequence returns a generator handing out ops in order, then nothing.
func sequence(ops ...*playback.Operation[string]) (playback.Generator[string], *int) {
	calls := 0
	return func() (*playback.Operation[string], error) {
		calls++
		if len(ops) == 0 {
			return nil, nil
		}
		op := ops[0]
		ops = ops[1:]
		return op, nil
	}, &calls
}

// waitApplied blocks until the sink reports the given snapshot.
func waitApplied(t *testing.T, s *recordingSink, want string) {
	t.Helper()
	select {
	case got := <-s.onApply:
		require.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %q", want)
	}
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("animation loop did not exit")
	}
}

func TestStep_PreservesOrderAndFinalizesOnce(t *testing.T) {
	op := makeOp("order", "e0", "e1", "e2", "e3")
	gen, _ := sequence(op)
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink)

	for i := 0; i < 3; i++ {
		r.Step()
		assert.Equal(t, i+1, r.CurrentEventIndex())
		assert.True(t, r.HasPendingOperation())
		assert.Empty(t, sink.Finalized())
	}
	r.Step()

	assert.Equal(t, []string{"e0", "e1", "e2", "e3"}, sink.Applied())
	require.Len(t, sink.Finalized(), 1)
	assert.Same(t, op, sink.Finalized()[0])
	assert.False(t, r.HasPendingOperation())
	assert.Zero(t, r.CurrentEventIndex())
	assert.Zero(t, r.TotalEventCount())
}

func TestFinishCurrent_RevealsOnlyLastEvent(t *testing.T) {
	for revealed := 0; revealed < 3; revealed++ {
		op := makeOp("finish", "e0", "e1", "e2", "e3")
		gen, _ := sequence(op)
		sink := newRecordingSink()
		r := playback.NewRunner(gen, sink)

		want := []string{}
		for i := 0; i < revealed; i++ {
			r.Step()
			want = append(want, op.Events[i].Snapshot)
		}
		if revealed == 0 {
			// prepare without revealing anything
			r.RunInstant()
			assert.Equal(t, []string{"e3"}, sink.Applied())
			assert.Len(t, sink.Finalized(), 1)
			continue
		}

		r.FinishCurrent()
		want = append(want, "e3")
		assert.Equal(t, want, sink.Applied(), "revealed=%d", revealed)
		require.Len(t, sink.Finalized(), 1)
		assert.Same(t, op, sink.Finalized()[0])
		assert.False(t, r.HasPendingOperation())
	}
}

func TestScenario_StepThenFinish(t *testing.T) {
	op := makeOp("abc", "A", "B", "C")
	gen, _ := sequence(op)
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink)

	r.Step()
	assert.Equal(t, []string{"A"}, sink.Applied())

	r.FinishCurrent()
	assert.Equal(t, []string{"A", "C"}, sink.Applied())
	require.Len(t, sink.Finalized(), 1)
	assert.Equal(t, 3, sink.Finalized()[0].Len())
	assert.Equal(t, 3, sink.Finalized()[0].Result)
}

func TestScenario_AnimateWithZeroDelay(t *testing.T) {
	op := makeOp("xy", "X", "Y")
	gen, _ := sequence(op)
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink, playback.WithFixedDelay(0))

	waitDone(t, r.RunAnimated(context.Background()))

	assert.Equal(t, []string{"X", "Y"}, sink.Applied())
	require.Len(t, sink.Finalized(), 1)
	assert.Same(t, op, sink.Finalized()[0])
	assert.False(t, r.IsAnimating())
	assert.False(t, r.HasPendingOperation())
}

func TestScenario_GeneratorYieldsNothing(t *testing.T) {
	gen, calls := sequence()
	sink := newRecordingSink()
	nothing := 0
	r := playback.NewRunner(gen, sink, playback.WithOnNothingPrepared(func(err error) {
		assert.NoError(t, err)
		nothing++
	}))

	r.Step()

	assert.Empty(t, sink.Applied())
	assert.Empty(t, sink.Finalized())
	assert.Equal(t, 1, nothing)
	assert.Equal(t, 1, *calls)
	assert.False(t, r.HasPendingOperation())
}

func TestGeneratorError_IsReportedNotRaised(t *testing.T) {
	boom := errors.New("no graph loaded")
	var got error
	r := playback.NewRunner(
		func() (*playback.Operation[string], error) { return nil, boom },
		newRecordingSink(),
		playback.WithOnNothingPrepared(func(err error) { got = err }),
	)

	assert.NotPanics(t, r.RunInstant)
	assert.ErrorIs(t, got, boom)

	done := r.RunAnimated(context.Background())
	select {
	case <-done:
	default:
		t.Fatal("RunAnimated with nothing to prepare must return a closed channel")
	}
	assert.False(t, r.IsAnimating())
}

func TestZeroEventOperation(t *testing.T) {
	t.Run("step", func(t *testing.T) {
		gen, _ := sequence(makeOp("empty"))
		sink := newRecordingSink()
		r := playback.NewRunner(gen, sink)

		r.Step()
		assert.Empty(t, sink.Applied())
		assert.Len(t, sink.Finalized(), 1)
	})

	t.Run("instant", func(t *testing.T) {
		gen, _ := sequence(makeOp("empty"))
		sink := newRecordingSink()
		r := playback.NewRunner(gen, sink)

		r.RunInstant()
		assert.Empty(t, sink.Applied())
		assert.Len(t, sink.Finalized(), 1)
	})

	t.Run("animated", func(t *testing.T) {
		gen, _ := sequence(makeOp("empty"))
		sink := newRecordingSink()
		r := playback.NewRunner(gen, sink)

		waitDone(t, r.RunAnimated(context.Background()))
		assert.Empty(t, sink.Applied())
		assert.Len(t, sink.Finalized(), 1)
	})
}

func TestFinishCurrent_NothingPending(t *testing.T) {
	gen, calls := sequence(makeOp("unused", "a"))
	sink := newRecordingSink()
	hits := 0
	r := playback.NewRunner(gen, sink, playback.WithOnNothingToFinish(func() { hits++ }))

	r.FinishCurrent()
	r.FinishCurrent()

	assert.Equal(t, 2, hits)
	assert.Zero(t, *calls, "FinishCurrent must not prepare")
	assert.Empty(t, sink.Finalized())
}

func TestFinalizeExactlyOnce_AcrossModes(t *testing.T) {
	ops := []*playback.Operation[string]{
		makeOp("one", "a", "b", "c"),
		makeOp("two", "d", "e"),
		makeOp("three", "f"),
		makeOp("four", "g", "h"),
	}
	gen, _ := sequence(ops...)
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink)

	r.Step()          // one: a
	r.RunInstant()    // finishes one (c), then instant two (e)
	r.FinishCurrent() // nothing pending
	r.Step()          // three: f, finalize
	r.Step()          // four: g
	r.Stop()
	r.Stop()
	waitDone(t, r.RunAnimated(context.Background())) // finishes four (h); generator is then exhausted
	r.EnsureNoPending()

	assert.Equal(t, []string{"a", "c", "e", "f", "g", "h"}, sink.Applied())
	finalized := sink.Finalized()
	require.Len(t, finalized, 4)
	for i, op := range ops {
		assert.Same(t, op, finalized[i])
	}
}

func TestRunAnimated_CancellationNeverInterleaves(t *testing.T) {
	gate := make(chan struct{})
	first := makeOp("first", "a1", "a2", "a3")
	second := makeOp("second", "b1", "b2")
	gen, _ := sequence(first, second)
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink, playback.WithDelay(func() time.Duration {
		<-gate
		return 0
	}))

	done1 := r.RunAnimated(context.Background())
	waitApplied(t, sink, "a1")

	r.Stop()
	assert.False(t, r.IsAnimating())
	assert.True(t, r.HasPendingOperation())

	done2 := r.RunAnimated(context.Background())
	close(gate)
	waitDone(t, done1)
	waitDone(t, done2)

	assert.Equal(t, []string{"a1", "a3", "b1", "b2"}, sink.Applied())
	finalized := sink.Finalized()
	require.Len(t, finalized, 2)
	assert.Same(t, first, finalized[0])
	assert.Same(t, second, finalized[1])
}

func TestRunAnimated_ReentrantCallIsNoOp(t *testing.T) {
	gate := make(chan struct{})
	op := makeOp("xy", "X", "Y")
	gen, calls := sequence(op, makeOp("never", "Z"))
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink, playback.WithDelay(func() time.Duration {
		<-gate
		return 0
	}))

	done1 := r.RunAnimated(context.Background())
	done2 := r.RunAnimated(context.Background())
	select {
	case <-done2:
	default:
		t.Fatal("second RunAnimated must return immediately")
	}
	assert.True(t, r.IsAnimating())

	close(gate)
	waitDone(t, done1)

	assert.Equal(t, []string{"X", "Y"}, sink.Applied())
	require.Len(t, sink.Finalized(), 1)
	assert.Equal(t, 1, *calls)
}

func TestRunAnimated_StopPausesInPlace(t *testing.T) {
	gate := make(chan struct{})
	op := makeOp("pause", "p0", "p1", "p2")
	gen, _ := sequence(op)
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink, playback.WithDelay(func() time.Duration {
		<-gate
		return 0
	}))

	done := r.RunAnimated(context.Background())
	waitApplied(t, sink, "p0")
	r.Stop()
	close(gate)
	waitDone(t, done)

	assert.True(t, r.HasPendingOperation())
	assert.Equal(t, 1, r.CurrentEventIndex())
	assert.Equal(t, 3, r.TotalEventCount())
	assert.Empty(t, sink.Finalized())

	r.Step()
	r.Step()
	assert.Equal(t, []string{"p0", "p1", "p2"}, sink.Applied())
	assert.Len(t, sink.Finalized(), 1)
}

func TestRunAnimated_ContextCancelLeavesOperationPaused(t *testing.T) {
	gate := make(chan struct{})
	gen, _ := sequence(makeOp("ctx", "c0", "c1"))
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink, playback.WithDelay(func() time.Duration {
		<-gate
		return 0
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := r.RunAnimated(ctx)
	waitApplied(t, sink, "c0")
	cancel()
	close(gate)
	waitDone(t, done)

	assert.False(t, r.IsAnimating())
	assert.True(t, r.HasPendingOperation())
	assert.Equal(t, 1, r.CurrentEventIndex())

	r.FinishCurrent()
	assert.Equal(t, []string{"c0", "c1"}, sink.Applied())
	assert.Len(t, sink.Finalized(), 1)
}

func TestRunAnimated_FinishCurrentMidFlight(t *testing.T) {
	gate := make(chan struct{})
	op := makeOp("mid", "l0", "l1", "l2", "l3")
	gen, _ := sequence(op)
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink, playback.WithDelay(func() time.Duration {
		<-gate
		return 0
	}))

	done := r.RunAnimated(context.Background())
	waitApplied(t, sink, "l0")
	require.True(t, r.IsAnimating())

	// The loop is asleep in its delay while the caller jumps to the end.
	r.FinishCurrent()
	close(gate)
	waitDone(t, done)

	assert.Equal(t, []string{"l0", "l3"}, sink.Applied())
	finalized := sink.Finalized()
	require.Len(t, finalized, 1)
	assert.Same(t, op, finalized[0])
	assert.False(t, r.IsAnimating())
	assert.False(t, r.HasPendingOperation())
}

func TestRunAnimated_StepMidFlight(t *testing.T) {
	gate := make(chan struct{})
	op := makeOp("mid", "s0", "s1", "s2")
	gen, calls := sequence(op)
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink, playback.WithDelay(func() time.Duration {
		<-gate
		return 0
	}))

	done := r.RunAnimated(context.Background())
	waitApplied(t, sink, "s0")

	r.Step()
	close(gate)
	waitDone(t, done)

	// The old loop stopped; the Step took over from the next index.
	assert.Equal(t, []string{"s0", "s1"}, sink.Applied())
	assert.Empty(t, sink.Finalized())
	assert.False(t, r.IsAnimating())
	assert.Equal(t, 2, r.CurrentEventIndex())

	r.Step()
	assert.Equal(t, []string{"s0", "s1", "s2"}, sink.Applied())
	require.Len(t, sink.Finalized(), 1)
	assert.Same(t, op, sink.Finalized()[0])
	assert.Equal(t, 1, *calls)
}

func TestRunAnimated_PollsDelayEveryEvent(t *testing.T) {
	var mu sync.Mutex
	polls := 0
	gen, _ := sequence(makeOp("poll", "a", "b", "c"))
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink, playback.WithDelay(func() time.Duration {
		mu.Lock()
		defer mu.Unlock()
		polls++
		return time.Millisecond
	}))

	waitDone(t, r.RunAnimated(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, polls)
	assert.Equal(t, []string{"a", "b", "c"}, sink.Applied())
}

func TestRunAnimated_FinishesStalePendingFirst(t *testing.T) {
	stale := makeOp("stale", "s0", "s1", "s2")
	fresh := makeOp("fresh", "f0")
	gen, _ := sequence(stale, fresh)
	sink := newRecordingSink()
	r := playback.NewRunner(gen, sink)

	r.Step()
	waitDone(t, r.RunAnimated(context.Background()))

	assert.Equal(t, []string{"s0", "s2", "f0"}, sink.Applied())
	finalized := sink.Finalized()
	require.Len(t, finalized, 2)
	assert.Same(t, stale, finalized[0])
	assert.Same(t, fresh, finalized[1])
}

func TestHooksAndMetrics(t *testing.T) {
	op := makeOp("hooks", "h0", "h1")
	gen, _ := sequence(op)
	sink := newRecordingSink()
	var prepared []playback.Info
	r := playback.NewRunner(gen, sink, playback.WithOnPrepared(func(info playback.Info) {
		prepared = append(prepared, info)
	}))

	r.Step()
	r.Step()

	require.Len(t, prepared, 1)
	assert.Equal(t, playback.Info{ID: op.ID, Kind: "hooks", Summary: "hooks done", EventCount: 2}, prepared[0])
	// prepare + two reveals + finalize
	assert.Equal(t, 4, sink.refreshes)
}

func TestIndependentRunners(t *testing.T) {
	genA, _ := sequence(makeOp("a", "a0", "a1"))
	genB, _ := sequence(makeOp("b", "b0", "b1", "b2"))
	sinkA, sinkB := newRecordingSink(), newRecordingSink()
	ra := playback.NewRunner(genA, sinkA)
	rb := playback.NewRunner(genB, sinkB)

	ra.Step()
	rb.Step()
	rb.Step()
	ra.Stop()

	assert.Equal(t, 1, ra.CurrentEventIndex())
	assert.Equal(t, 2, rb.CurrentEventIndex())
	assert.Equal(t, []string{"a0"}, sinkA.Applied())
	assert.Equal(t, []string{"b0", "b1"}, sinkB.Applied())
}

func TestSinkFuncs_NilFieldsAreNoOps(t *testing.T) {
	gen, _ := sequence(makeOp("funcs", "x"))
	var finalized int
	r := playback.NewRunner(gen, playback.SinkFuncs[string]{
		Finalize: func(*playback.Operation[string]) { finalized++ },
	})

	assert.NotPanics(t, r.Step)
	assert.Equal(t, 1, finalized)
}

func TestOperationHelpers(t *testing.T) {
	op := makeOp("helpers", "first", "last")
	last, ok := op.Last()
	require.True(t, ok)
	assert.Equal(t, "last", last.Snapshot)
	assert.Equal(t, "reveal last", last.Message)
	assert.True(t, last.HasLine())
	assert.NotEmpty(t, op.ID)

	empty := playback.NewOperation[string]("empty", nil)
	_, ok = empty.Last()
	assert.False(t, ok)
	assert.NotEqual(t, op.ID, empty.ID)
}
