package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/lvltrace/playback"
)

// eventWriter prints revealed Events and finalized Operations.
// Text output is one line per Event and a closing summary line; JSON output
// is one object per line.
type eventWriter struct {
	w      io.Writer
	format string
	shown  int // Events revealed for the current Operation
	err    error
}

// eventLine is the JSON form of one revealed Event.
type eventLine struct {
	Type     string `json:"type"`
	Kind     string `json:"kind"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
	Snapshot any    `json:"snapshot"`
}

// operationLine is the JSON form of one finalized Operation.
type operationLine struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Summary string `json:"summary"`
	Events  int    `json:"events"`
	Shown   int    `json:"shown"`
	Result  any    `json:"result"`
}

func (ew *eventWriter) event(kind string, line int, message string, snapshot any) {
	ew.shown++
	if ew.format == "json" {
		ew.encode(eventLine{Type: "event", Kind: kind, Line: line, Message: message, Snapshot: snapshot})
		return
	}
	ew.printf("%-4s %s\n", lineLabel(line), message)
}

func (ew *eventWriter) operation(info playback.Info, result any) {
	shown := ew.shown
	ew.shown = 0
	if ew.format == "json" {
		ew.encode(operationLine{
			Type: "operation", ID: info.ID, Kind: info.Kind, Summary: info.Summary,
			Events: info.EventCount, Shown: shown, Result: result,
		})
		return
	}
	ew.printf("== %s (%d of %d events shown)\n", info.Summary, shown, info.EventCount)
}

func (ew *eventWriter) encode(v any) {
	if ew.err != nil {
		return
	}
	ew.err = json.NewEncoder(ew.w).Encode(v)
}

func (ew *eventWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// lineLabel renders a procedure line as "L3", or "--" for none.
func lineLabel(line int) string {
	if line == playback.NoLine {
		return "--"
	}
	return fmt.Sprintf("L%d", line)
}

// sinkFor adapts ew to the Sink of one Snapshot type.
func sinkFor[S any](ew *eventWriter) playback.Sink[S] {
	return playback.SinkFuncs[S]{
		Apply: func(ev playback.Event[S]) {
			ew.event(ev.Kind, ev.Line, ev.Message, ev.Snapshot)
		},
		Finalize: func(op *playback.Operation[S]) {
			ew.operation(op.Info(), op.Result)
		},
	}
}
