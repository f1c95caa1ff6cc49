// File: types.go
// Role: Event/Operation contract shared by every trace generator, the Sink
//       callbacks and the functional options of the Runner.
// Determinism:
//   - Trace collects Events in emission order; the Runner never reorders them.
// Invariants:
//   - Event.Snapshot is complete state; producers deep-copy mutable structures.
//   - An Operation is immutable once returned by a Generator.

package playback

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvltrace/logging"
)

// NoLine marks an Event that does not point into a procedure listing.
const NoLine = 0

// Event is one observable increment of algorithm progress.
type Event[S any] struct {
	// Kind names the procedure family the Event belongs to. Opaque to the Runner.
	Kind string

	// Line is a 1-based pointer into the displayed procedure, or NoLine.
	Line int

	// Message is a human-readable description of the step.
	Message string

	// Snapshot is the complete algorithm state at this point.
	Snapshot S
}

// HasLine reports whether the Event points at a procedure line.
func (e Event[S]) HasLine() bool { return e.Line != NoLine }

// Operation is the full result of invoking a trace generator once.
type Operation[S any] struct {
	// ID uniquely identifies this Operation (assigned by NewOperation).
	ID string

	// Kind names the algorithm or procedure that produced the trace.
	Kind string

	// Events is the ordered trace. It may be empty.
	Events []Event[S]

	// Summary is a one-line human description of the outcome.
	Summary string

	// Result carries aggregate result fields consumed by the finalizer.
	Result any
}

// NewOperation returns an Operation with a fresh ID.
func NewOperation[S any](kind string, events []Event[S]) *Operation[S] {
	return &Operation[S]{
		ID:     uuid.NewString(),
		Kind:   kind,
		Events: events,
	}
}

// Len returns the number of Events in the Operation.
func (op *Operation[S]) Len() int { return len(op.Events) }

// Last returns the final Event and true, or a zero Event and false if the trace is empty.
func (op *Operation[S]) Last() (Event[S], bool) {
	if len(op.Events) == 0 {
		var zero Event[S]
		return zero, false
	}

	return op.Events[len(op.Events)-1], true
}

// Info returns the snapshot-free description of op handed to observer hooks.
func (op *Operation[S]) Info() Info {
	return Info{ID: op.ID, Kind: op.Kind, Summary: op.Summary, EventCount: len(op.Events)}
}

// Info describes an Operation without its type-parameterised payload.
type Info struct {
	ID         string
	Kind       string
	Summary    string
	EventCount int
}

// Generator produces one Operation. A nil Operation or a non-nil error means
// "cannot proceed" (e.g. no input loaded); it is not a Runner failure.
// Generators must be pure and must run to completion before returning.
type Generator[S any] func() (*Operation[S], error)

// Sink receives revealed Events and finalized Operations.
// Calls are serialised by the Runner and never overlap.
type Sink[S any] interface {
	// ApplyEvent is invoked once per revealed Event, in order.
	ApplyEvent(ev Event[S])

	// FinalizeOperation is invoked exactly once per Operation after its last Event.
	FinalizeOperation(op *Operation[S])

	// RefreshMetrics is invoked whenever the Runner's progress counters change.
	RefreshMetrics()
}

// SinkFuncs adapts plain functions to Sink. Nil fields are no-ops.
type SinkFuncs[S any] struct {
	Apply    func(Event[S])
	Finalize func(*Operation[S])
	Refresh  func()
}

// ApplyEvent calls f.Apply if set.
func (f SinkFuncs[S]) ApplyEvent(ev Event[S]) {
	if f.Apply != nil {
		f.Apply(ev)
	}
}

// FinalizeOperation calls f.Finalize if set.
func (f SinkFuncs[S]) FinalizeOperation(op *Operation[S]) {
	if f.Finalize != nil {
		f.Finalize(op)
	}
}

// RefreshMetrics calls f.Refresh if set.
func (f SinkFuncs[S]) RefreshMetrics() {
	if f.Refresh != nil {
		f.Refresh()
	}
}

// Trace accumulates Events for a generator and seals them into an Operation.
// Callers pass a freshly copied snapshot to every Emit.
type Trace[S any] struct {
	kind   string
	events []Event[S]
}

// NewTrace starts an empty trace whose Events default to kind.
func NewTrace[S any](kind string) *Trace[S] {
	return &Trace[S]{kind: kind}
}

// Emit appends an Event of the trace's default kind.
func (t *Trace[S]) Emit(line int, snap S, format string, args ...any) {
	t.EmitKind(t.kind, line, snap, format, args...)
}

// EmitKind appends an Event with an explicit kind.
func (t *Trace[S]) EmitKind(kind string, line int, snap S, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	t.events = append(t.events, Event[S]{Kind: kind, Line: line, Message: msg, Snapshot: snap})
}

// Len returns the number of Events emitted so far.
func (t *Trace[S]) Len() int { return len(t.events) }

// Operation seals the trace. The Trace must not be used afterwards.
func (t *Trace[S]) Operation(summary string, result any) *Operation[S] {
	op := NewOperation(t.kind, t.events)
	op.Summary = summary
	op.Result = result
	t.events = nil

	return op
}

// Options configures a Runner.
type Options struct {
	// Delay is polled once per animated Event; speed changes apply mid-playback.
	Delay func() time.Duration

	// Logger receives lifecycle diagnostics at debug level.
	Logger logging.Logger

	// OnPrepared fires once per successfully prepared Operation.
	OnPrepared func(Info)

	// OnNothingPrepared fires when the generator yields no Operation.
	OnNothingPrepared func(err error)

	// OnNothingToFinish fires when FinishCurrent finds no pending Operation.
	OnNothingToFinish func()
}

// Option is a functional option for NewRunner.
type Option func(*Options)

// DefaultOptions returns zero delay, a no-op logger and no hooks.
func DefaultOptions() Options {
	return Options{
		Delay:  func() time.Duration { return 0 },
		Logger: logging.NoOpLogger{},
	}
}

// WithDelay installs a delay provider polled before every animated wake-up.
// A nil fn is ignored.
func WithDelay(fn func() time.Duration) Option {
	return func(o *Options) {
		if fn != nil {
			o.Delay = fn
		}
	}
}

// WithFixedDelay sets a constant delay between animated Events.
func WithFixedDelay(d time.Duration) Option {
	return WithDelay(func() time.Duration { return d })
}

// WithLogger sets the Runner logger. A nil logger is ignored.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPrepared installs the "operation prepared" hook.
func WithOnPrepared(fn func(Info)) Option {
	return func(o *Options) { o.OnPrepared = fn }
}

// WithOnNothingPrepared installs the hook fired when the generator yields nothing.
func WithOnNothingPrepared(fn func(err error)) Option {
	return func(o *Options) { o.OnNothingPrepared = fn }
}

// WithOnNothingToFinish installs the hook fired by FinishCurrent on an empty Runner.
func WithOnNothingToFinish(fn func()) Option {
	return func(o *Options) { o.OnNothingToFinish = fn }
}
