package tower_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanoi/tower"
)

func TestTextSink_Order(t *testing.T) {
	var buf bytes.Buffer
	sink := tower.NewTextSink(&buf)
	s, _ := tower.NewCanonical(2)
	sink.Display(s)

	want := "peg-1: [1 2]\npeg-2: []\npeg-3: []\n" + tower.Separator + "\n"
	assert.Equal(t, want, buf.String())
}

func TestTextSink_NilWriter(t *testing.T) {
	s, _ := tower.NewCanonical(1)
	assert.NotPanics(t, func() { (&tower.TextSink{}).Display(s) })
}

func TestRecorder(t *testing.T) {
	var r tower.Recorder
	_, err := r.Last()
	assert.ErrorIs(t, err, tower.ErrEmptyRecorder)

	a, _ := tower.NewCanonical(1)
	b, _ := a.Move(tower.Peg1, tower.Peg3)
	r.Display(a)
	r.Display(b)

	assert.Equal(t, 2, r.Len())
	last, err := r.Last()
	require.NoError(t, err)
	assert.True(t, last.Equal(b))
}

func TestSinkFunc(t *testing.T) {
	calls := 0
	var sink tower.Sink = tower.SinkFunc(func(tower.State) { calls++ })
	s, _ := tower.NewCanonical(1)
	sink.Display(s)
	tower.Discard.Display(s)
	assert.Equal(t, 1, calls)
}
