// Package ringbuf implements a fixed-capacity byte queue with a
// non-mutating reader iterator that can later be committed, letting a
// caller speculatively read ahead and then either keep or discard what it
// saw without copying the underlying bytes twice.
package ringbuf

import "errors"

// ErrNoData is returned by Get and the Reader's Get when the buffer (or
// the span between the reader's cursor and the tail) is exhausted.
var ErrNoData = errors.New("ringbuf: no data")

// ErrFull is returned by Put, PutBack and PutMem when there isn't enough
// free space to satisfy the request.
var ErrFull = errors.New("ringbuf: full")

// Ring is a fixed-capacity byte queue addressed by head/tail indices
// modulo the backing array's length, with a full flag to disambiguate
// head == tail meaning empty from head == tail meaning completely full.
type Ring struct {
	buf  []byte
	head int
	tail int
	full bool
}

// New allocates a Ring with room for size bytes.
func New(size int) *Ring {
	return &Ring{buf: make([]byte, size)}
}

// IsEmpty reports whether the ring currently holds no bytes.
func (r *Ring) IsEmpty() bool {
	return r.head == r.tail && !r.full
}

// SpaceAvail returns the number of bytes that can still be Put before the
// ring is full.
func (r *Ring) SpaceAvail() int {
	if r.full {
		return 0
	}
	if r.tail >= r.head {
		return (len(r.buf) - r.tail) + r.head
	}
	return r.head - r.tail
}

func (r *Ring) advance(i int) int {
	i++
	if i == len(r.buf) {
		i = 0
	}
	return i
}

func (r *Ring) backup(i int) int {
	if i == 0 {
		return len(r.buf) - 1
	}
	return i - 1
}

// Put appends one byte at the tail. It returns ErrFull if the ring is
// already full.
func (r *Ring) Put(c byte) error {
	if r.full {
		return ErrFull
	}
	r.buf[r.tail] = c
	r.tail = r.advance(r.tail)
	if r.head == r.tail {
		r.full = true
	}
	return nil
}

// PutBack prepends one byte at the head, decrementing head with
// wrap-around. Used by the input buffer after a failed look-ahead that
// needs to push a byte back onto the front of the stream.
func (r *Ring) PutBack(c byte) error {
	if r.full {
		return ErrFull
	}
	r.head = r.backup(r.head)
	r.buf[r.head] = c
	if r.head == r.tail {
		r.full = true
	}
	return nil
}

// PutMem appends mem in bulk, failing (with no partial write) if there is
// not enough space for all of it.
func (r *Ring) PutMem(mem []byte) error {
	if r.full {
		if len(mem) == 0 {
			return nil
		}
		return ErrFull
	}
	if r.SpaceAvail() < len(mem) {
		return ErrFull
	}
	for _, c := range mem {
		r.buf[r.tail] = c
		r.tail = r.advance(r.tail)
	}
	if r.head == r.tail {
		r.full = true
	}
	return nil
}

// Get pops one byte off the head, or ErrNoData if the ring is empty.
func (r *Ring) Get() (byte, error) {
	if r.IsEmpty() {
		return 0, ErrNoData
	}
	r.full = false
	c := r.buf[r.head]
	r.head = r.advance(r.head)
	return c, nil
}

// Clear discards all buffered bytes without reading them.
func (r *Ring) Clear() {
	r.head = r.tail
	r.full = false
}

// Reader is a non-mutating iterator over a Ring's live [head, tail) range.
// Reading through a Reader never advances the Ring's own head; Consume
// does that explicitly, all at once.
type Reader struct {
	r      *Ring
	cursor int
	atEnd  bool
}

// NewReader creates a Reader positioned at the Ring's current head.
func NewReader(r *Ring) *Reader {
	rd := &Reader{r: r}
	rd.Reset()
	return rd
}

// Reset repositions the cursor at the ring's current head.
func (rd *Reader) Reset() {
	rd.cursor = rd.r.head
	rd.atEnd = rd.r.IsEmpty()
}

// ToEnd positions the cursor past the tail, so the next Get returns
// ErrNoData.
func (rd *Reader) ToEnd() {
	rd.cursor = rd.r.tail
	rd.atEnd = true
}

// AtEnd reports whether the cursor has reached the tail.
func (rd *Reader) AtEnd() bool {
	return rd.atEnd
}

// Get returns the byte at the cursor and advances it, or ErrNoData if the
// cursor has already reached the tail.
func (rd *Reader) Get() (byte, error) {
	if rd.atEnd {
		return 0, ErrNoData
	}
	c := rd.r.buf[rd.cursor]
	rd.cursor = rd.r.advance(rd.cursor)
	if rd.cursor == rd.r.tail {
		rd.atEnd = true
	}
	return c, nil
}

// Consume advances the ring's head to the reader's cursor, discarding
// everything between the old head and the cursor, and clears the full
// flag (the consumed span can no longer be full).
func (rd *Reader) Consume() {
	if rd.atEnd {
		rd.r.head = rd.r.tail
	} else {
		rd.r.head = rd.cursor
	}
	rd.r.full = false
}
