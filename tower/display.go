package tower

import (
	"io"
	"strings"
)

// Separator is the line TextSink writes after every state.
const Separator = "----------"

// Sink receives states to render, one call per visited state.
type Sink interface {
	Display(s State)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(s State)

// Display calls f(s).
func (f SinkFunc) Display(s State) { f(s) }

// Discard is a Sink that ignores every state.
var Discard Sink = SinkFunc(func(State) {})

// TextSink writes each state as one line per peg (peg-1, peg-2, peg-3)
// followed by Separator. Write errors are dropped; display is fire-and-forget.
type TextSink struct {
	W io.Writer
}

// NewTextSink returns a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{W: w}
}

// Display renders s to the underlying writer.
func (t *TextSink) Display(s State) {
	if t == nil || t.W == nil {
		return
	}
	var b strings.Builder
	b.WriteString(s.String())
	b.WriteByte('\n')
	b.WriteString(Separator)
	b.WriteByte('\n')
	_, _ = io.WriteString(t.W, b.String())
}

// Recorder is a Sink that keeps every state it receives, in order.
type Recorder struct {
	States []State
}

// Display appends s.
func (r *Recorder) Display(s State) {
	r.States = append(r.States, s)
}

// Len returns the number of recorded states.
func (r *Recorder) Len() int { return len(r.States) }

// Last returns the most recent state, or an error if none was recorded.
func (r *Recorder) Last() (State, error) {
	if len(r.States) == 0 {
		return State{}, ErrEmptyRecorder
	}
	return r.States[len(r.States)-1], nil
}
