package ringbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyAndFull(t *testing.T) {
	r := New(4)
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 4, r.SpaceAvail())

	for i := 0; i < 4; i++ {
		require.NoError(t, r.Put(byte('a'+i)))
	}
	assert.False(t, r.IsEmpty())
	assert.Equal(t, 0, r.SpaceAvail())
	assert.ErrorIs(t, r.Put('z'), ErrFull)
}

func TestPutGetOrder(t *testing.T) {
	r := New(4)
	require.NoError(t, r.Put('a'))
	require.NoError(t, r.Put('b'))

	c, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), c)

	c, err = r.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('b'), c)

	_, err = r.Get()
	assert.ErrorIs(t, err, ErrNoData)
}

func TestWrapAround(t *testing.T) {
	r := New(3)
	require.NoError(t, r.Put('a'))
	require.NoError(t, r.Put('b'))
	c, _ := r.Get()
	assert.Equal(t, byte('a'), c)
	require.NoError(t, r.Put('c'))
	require.NoError(t, r.Put('d'))

	for _, want := range []byte{'b', 'c', 'd'} {
		got, err := r.Get()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, r.IsEmpty())
}

func TestPutBack(t *testing.T) {
	r := New(4)
	require.NoError(t, r.Put('b'))
	require.NoError(t, r.PutBack('a'))

	c, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), c)
	c, err = r.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('b'), c)
}

func TestPutMemPartialFailureLeavesBufferUnchanged(t *testing.T) {
	r := New(4)
	require.NoError(t, r.Put('x'))
	err := r.PutMem([]byte("abcd"))
	assert.ErrorIs(t, err, ErrFull)

	c, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('x'), c)
	assert.True(t, r.IsEmpty())
}

func TestClear(t *testing.T) {
	r := New(4)
	require.NoError(t, r.PutMem([]byte("ab")))
	r.Clear()
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 4, r.SpaceAvail())
}

func TestReaderIteratesWithoutConsuming(t *testing.T) {
	r := New(4)
	require.NoError(t, r.PutMem([]byte("ab")))

	rd := NewReader(r)
	c, err := rd.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), c)
	c, err = rd.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('b'), c)
	assert.True(t, rd.AtEnd())
	_, err = rd.Get()
	assert.ErrorIs(t, err, ErrNoData)

	// Ring itself is untouched by the reader.
	assert.False(t, r.IsEmpty())
	got, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), got)
}

func TestReaderConsumeAdvancesHead(t *testing.T) {
	r := New(4)
	require.NoError(t, r.PutMem([]byte("abc")))

	rd := NewReader(r)
	_, _ = rd.Get()
	_, _ = rd.Get()
	rd.Consume()

	c, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('c'), c)
	assert.True(t, r.IsEmpty())
}

func TestReaderResetAfterRewind(t *testing.T) {
	r := New(4)
	require.NoError(t, r.PutMem([]byte("ab")))

	rd := NewReader(r)
	_, _ = rd.Get()
	rd.Reset()

	c, err := rd.Get()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), c)
}

func TestReaderToEnd(t *testing.T) {
	r := New(4)
	require.NoError(t, r.PutMem([]byte("ab")))

	rd := NewReader(r)
	rd.ToEnd()
	assert.True(t, rd.AtEnd())
	rd.Consume()
	assert.True(t, r.IsEmpty())
}
