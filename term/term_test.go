// Copyright 2013 Google, Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package term

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader returns one byte per Read call, to exercise Reader's
// partial-chunk bookkeeping across multiple relayed chunks.
type chunkReader struct {
	data []byte
	pos  int
}

func (c *chunkReader) Read(b []byte) (int, error) {
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}
	n := copy(b, c.data[c.pos:c.pos+1])
	c.pos += n
	return n, nil
}

func TestReaderRelaysChunks(t *testing.T) {
	r := NewReader(&chunkReader{data: []byte("abc")})

	var got bytes.Buffer
	buf := make([]byte, 1)
	for i := 0; i < 3; i++ {
		n, err := r.Read(buf)
		require.NoError(t, err)
		got.Write(buf[:n])
	}
	assert.Equal(t, "abc", got.String())
}

func TestReaderReturnsUnderlyingErrorAtEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))

	buf := make([]byte, 8)
	_, err := r.Read(buf)
	assert.Equal(t, io.EOF, err)
}

func TestReaderServesPartialChunkAcrossReads(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("hello")))

	first := make([]byte, 2)
	n, err := r.Read(first)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "he", string(first[:n]))

	rest := make([]byte, 8)
	n, err = r.Read(rest)
	require.NoError(t, err)
	assert.Equal(t, "llo", string(rest[:n]))
}

func TestReaderPauseRendezvousesBetweenReads(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewReader(pr)

	pw.Write([]byte("x"))
	buf := make([]byte, 1)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "x", string(buf[:n]))

	// The background goroutine is now blocked in its next console Read;
	// Pause only rendezvous at the top of the loop, so it won't proceed
	// until that Read returns.
	pauseAcquired := make(chan func(), 1)
	go func() { pauseAcquired <- r.Pause() }()

	pw.Write([]byte("y"))

	var resume func()
	select {
	case resume = <-pauseAcquired:
	case <-time.After(time.Second):
		t.Fatal("Pause never rendezvoused with the background goroutine")
	}
	resume()

	n, err = r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "y", string(buf[:n]))
}
