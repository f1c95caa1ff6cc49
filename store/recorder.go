package store

import (
	"context"
	"sync"
	"time"

	"github.com/katalvlaran/lvltrace/logging"
	"github.com/katalvlaran/lvltrace/playback"
)

// Recorder is a playback.Sink that forwards every call to an inner Sink and
// archives each finalized Operation.
//
// Sink methods cannot return errors, so a failed save is logged and kept;
// Err reports the first one.
type Recorder[S any] struct {
	ctx   context.Context
	store *Store
	inner playback.Sink[S]
	log   logging.Logger
	now   func() time.Time

	mu  sync.Mutex
	err error
}

// RecorderOption configures a Recorder.
type RecorderOption func(*recorderConfig)

type recorderConfig struct {
	log logging.Logger
	now func() time.Time
}

// WithRecorderLogger sets the logger used to report failed saves.
func WithRecorderLogger(l logging.Logger) RecorderOption {
	return func(c *recorderConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock overrides the time source stamped into Record.CreatedAt.
func WithClock(now func() time.Time) RecorderOption {
	return func(c *recorderConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// NewRecorder wraps inner. A nil inner Sink records without forwarding.
func NewRecorder[S any](ctx context.Context, s *Store, inner playback.Sink[S], opts ...RecorderOption) *Recorder[S] {
	cfg := recorderConfig{log: logging.NoOpLogger{}, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	if inner == nil {
		inner = playback.SinkFuncs[S]{}
	}

	return &Recorder[S]{ctx: ctx, store: s, inner: inner, log: cfg.log, now: cfg.now}
}

// ApplyEvent forwards ev.
func (r *Recorder[S]) ApplyEvent(ev playback.Event[S]) { r.inner.ApplyEvent(ev) }

// RefreshMetrics forwards the refresh request.
func (r *Recorder[S]) RefreshMetrics() { r.inner.RefreshMetrics() }

// FinalizeOperation forwards op and then archives it.
func (r *Recorder[S]) FinalizeOperation(op *playback.Operation[S]) {
	r.inner.FinalizeOperation(op)

	rec, err := NewRecord(op, r.now())
	if err == nil {
		err = r.store.SaveOperation(r.ctx, rec)
	}
	if err != nil {
		r.log.Error("archive operation failed", "operation_id", op.ID, "kind", op.Kind, "error", err)
		r.mu.Lock()
		if r.err == nil {
			r.err = err
		}
		r.mu.Unlock()
		return
	}
	r.log.Debug("operation archived", "operation_id", op.ID, "kind", op.Kind, "total", rec.EventCount)
}

// Err returns the first archive failure, or nil.
func (r *Recorder[S]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
