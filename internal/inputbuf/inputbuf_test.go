package inputbuf

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuf(s string) *InputBuf {
	return New(NewIOSource(bytes.NewReader([]byte(s))), 16)
}

func TestPlainGetDrainsInOrder(t *testing.T) {
	b := newTestBuf("abc")
	for _, want := range []byte{'a', 'b', 'c'} {
		c, err := b.Get()
		require.NoError(t, err)
		assert.Equal(t, want, c)
	}
	_, err := b.Get()
	assert.ErrorIs(t, err, io.EOF)
	assert.EqualValues(t, 3, b.Committed())
}

func TestRewindReplaysBytes(t *testing.T) {
	b := newTestBuf("abc")
	require.NoError(t, b.Save())

	c, _ := b.Get()
	assert.Equal(t, byte('a'), c)
	c, _ = b.Get()
	assert.Equal(t, byte('b'), c)

	b.Rewind()
	assert.EqualValues(t, 0, b.Committed())

	for _, want := range []byte{'a', 'b', 'c'} {
		c, err := b.Get()
		require.NoError(t, err)
		assert.Equal(t, want, c)
	}
}

func TestCommitKeepsBytesConsumed(t *testing.T) {
	b := newTestBuf("abcd")
	require.NoError(t, b.Save())

	_, _ = b.Get()
	_, _ = b.Get()
	b.Commit()
	assert.EqualValues(t, 2, b.Committed())

	c, err := b.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('c'), c)
}

func TestCommitWithoutSavingIsANoOp(t *testing.T) {
	// Mirrors the recognizer's actual usage: readCSISequence/handleNF
	// internally Rewind() to replay a recognized sequence in non-saving
	// mode before the caller's outer Commit() runs. Commit() must not
	// move the ring's head backward to the stale reader cursor left over
	// from the save in that case, or the just-consumed bytes would be
	// re-exposed to the next Get().
	b := newTestBuf("abcd")
	require.NoError(t, b.Save())
	_, _ = b.Get()
	_, _ = b.Get()
	b.Rewind()

	c, err := b.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), c)
	c, err = b.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('b'), c)
	assert.EqualValues(t, 2, b.Committed())

	b.Commit()
	assert.EqualValues(t, 2, b.Committed())

	c, err = b.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('c'), c)
}

func TestSaveTwiceReportsError(t *testing.T) {
	b := newTestBuf("a")
	require.NoError(t, b.Save())
	assert.ErrorIs(t, b.Save(), ErrAlreadySaving)
}

func TestSaveThenPastRingContentRewinds(t *testing.T) {
	// Exercise the path where a save reads beyond what was already
	// buffered, pulling fresh bytes from the stream and appending them to
	// the ring, then rewinds and replays everything including the freshly
	// pulled bytes.
	b := newTestBuf("abcdef")
	require.NoError(t, b.Save())
	for i := 0; i < 4; i++ {
		_, err := b.Get()
		require.NoError(t, err)
	}
	b.Rewind()

	for _, want := range []byte{'a', 'b', 'c', 'd', 'e', 'f'} {
		c, err := b.Get()
		require.NoError(t, err)
		assert.Equal(t, want, c)
	}
}
