package teseq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayReaderReadOne(t *testing.T) {
	d := NewDelayReader(strings.NewReader("0.5 10\n1.25 20\n"))

	seconds, chars, ok := d.readOne()
	require.True(t, ok)
	assert.InDelta(t, 0.5, seconds, 0.0001)
	assert.EqualValues(t, 10, chars)

	seconds, chars, ok = d.readOne()
	require.True(t, ok)
	assert.InDelta(t, 1.25, seconds, 0.0001)
	assert.EqualValues(t, 20, chars)

	_, _, ok = d.readOne()
	assert.False(t, ok)
}

func TestDelayReaderReadOneRejectsMalformedLine(t *testing.T) {
	d := NewDelayReader(strings.NewReader("notanumber 10\n"))
	_, _, ok := d.readOne()
	assert.False(t, ok)
}

func TestDelayReaderReadOneShortLineFails(t *testing.T) {
	d := NewDelayReader(strings.NewReader("0.5"))
	_, _, ok := d.readOne()
	assert.False(t, ok)
}

// TestDelayReaderDropsFirstMark exercises the "next mark" convention: the
// very first line's own delay describes the read that produced the
// timings file's leading byte count, not a gap between two marks, so it
// is discarded; only its byte count seeds nextMark. The second line's
// delay is the first one actually reported.
func TestDelayReaderDropsFirstMark(t *testing.T) {
	d := NewDelayReader(strings.NewReader("0.0 5\n2.0 5\n"))

	// Freshly constructed, mark sits at 0, so the reader is due
	// immediately regardless of committed count.
	assert.True(t, d.crossed(0))

	var emitted []float64
	require.NoError(t, d.emitDue(0, func(seconds float64) error {
		emitted = append(emitted, seconds)
		return nil
	}))

	assert.Equal(t, []float64{2.0}, emitted)
}

func TestDelayReaderEmitsSubsequentMarks(t *testing.T) {
	d := NewDelayReader(strings.NewReader("0.0 3\n0.1 4\n0.2 5\n"))

	var first []float64
	require.NoError(t, d.emitDue(0, func(seconds float64) error {
		first = append(first, seconds)
		return nil
	}))
	assert.Equal(t, []float64{0.1}, first)

	assert.True(t, d.crossed(3))

	var second []float64
	require.NoError(t, d.emitDue(3, func(seconds float64) error {
		second = append(second, seconds)
		return nil
	}))
	assert.Equal(t, []float64{0.2}, second)
}

func TestDelayReaderExhaustionStopsCrossing(t *testing.T) {
	d := NewDelayReader(strings.NewReader("0.0 2\n"))
	require.NoError(t, d.emitDue(2, func(seconds float64) error { return nil }))
	assert.True(t, d.done)
	assert.False(t, d.crossed(1_000_000))
}

func TestDelayReaderEmitDuePropagatesEmitError(t *testing.T) {
	d := NewDelayReader(strings.NewReader("0.0 2\n0.1 3\n"))
	wantErr := assert.AnError
	err := d.emitDue(2, func(seconds float64) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}
