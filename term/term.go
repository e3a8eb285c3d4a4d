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
	"io"
	"sync"
)

// ReadBufferLength is the capacity of the channel of completed chunks; it
// bounds how far the background reader can run ahead of its consumer.
const (
	ReadBufferLength = 32
	DefaultChunkSize = 256
)

// A Reader relays raw bytes from a console one read(2)-sized chunk at a
// time, on its own goroutine, so that a driver loop elsewhere (the
// processor's Run, in this tool) never itself blocks inside a read that
// an interactive user may not satisfy for an arbitrary amount of time.
//
// All methods on Reader are goroutine-safe.
type Reader struct {
	console io.Reader

	next    chan []byte    // completed chunks
	partial []byte         // bytes from the most recent chunk not yet returned
	lock    sync.Mutex     // serializes Read
	err     error          // the error that stopped the background goroutine
	update  chan chan bool // rendezvous used by Pause
}

// NewReader starts a goroutine relaying chunks read from console onto an
// internal channel, and returns a Reader that serves them through Read.
func NewReader(console io.Reader) *Reader {
	r := &Reader{
		console: console,
		next:    make(chan []byte, ReadBufferLength),
		update:  make(chan chan bool),
	}
	go r.run()
	return r
}

// run is the background relay goroutine. Before each blocking read it
// gives Pause a chance to run, so a caller can briefly own the Reader
// (e.g. to inspect its error after a signal) without racing a read in
// flight.
func (r *Reader) run() {
	defer close(r.next)

	buf := make([]byte, DefaultChunkSize)
	for {
		r.yield()
		n, err := r.console.Read(buf)
		if err != nil {
			r.err = err
			return
		}
		if n == 0 {
			continue
		}
		chunk := make([]byte, n)
		copy(chunk, buf[:n])
		r.next <- chunk
	}
}

// yield gives a pending Pause the opportunity to proceed.
func (r *Reader) yield() {
	select {
	case done := <-r.update:
		<-done
	default:
	}
}

// Pause blocks the background goroutine before its next console read
// until the returned resume function is called. It is meant for a
// signal handler that needs a quiescent window on the reader, e.g.
// before reporting Err() after a termination signal.
func (r *Reader) Pause() (resume func()) {
	done := make(chan bool, 1)
	r.update <- done
	return func() { done <- true }
}

// Read implements io.Reader, returning bytes from the most recently
// relayed chunk, blocking until one is available if none remain.
func (r *Reader) Read(b []byte) (n int, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if len(r.partial) == 0 {
		chunk, ok := <-r.next
		if !ok {
			return 0, r.err
		}
		r.partial = chunk
	}

	n = copy(b, r.partial)
	r.partial = r.partial[n:]
	return n, nil
}
