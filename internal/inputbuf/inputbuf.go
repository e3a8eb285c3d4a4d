// Package inputbuf implements the savepoint-capable byte reader that sits
// between a raw stream and the recognizer: normal reads drain a small
// ring buffer ahead of the stream, and a caller can mark a savepoint,
// read further, then either rewind (undoing those reads) or commit
// (keeping them) without ever re-reading the underlying stream.
package inputbuf

import (
	"errors"
	"io"

	"github.com/cloudwego/gopkg/bufiox"

	"github.com/flw-cn/teseq/internal/ringbuf"
)

// ErrAlreadySaving is returned by Save when a savepoint is already open.
var ErrAlreadySaving = errors.New("inputbuf: already saving")

// DefaultCapacity is the ring buffer size used when none is specified.
// The core only ever needs a few dozen bytes of look-ahead (the longest
// CSI/nF sequences); this leaves generous headroom without approaching
// the reference implementation's 1024-byte budget.
const DefaultCapacity = 256

// Source is the minimal byte-at-a-time stream abstraction InputBuf pulls
// from once its ring buffer and reader are exhausted.
type Source interface {
	ReadByte() (byte, error)
}

// bufioxSource adapts a bufiox.Reader, read one byte at a time, to
// Source. Each call asks the zero-copy reader for exactly one byte and
// immediately releases it; bufiox still amortizes the underlying
// io.Reader calls via its own internal block buffering.
type bufioxSource struct {
	r bufiox.Reader
}

// NewBufioxSource wraps r as a Source, reading one byte at a time.
func NewBufioxSource(r bufiox.Reader) Source {
	return &bufioxSource{r: r}
}

func (s *bufioxSource) ReadByte() (byte, error) {
	p, err := s.r.Next(1)
	if err != nil {
		return 0, err
	}
	b := p[0]
	if err := s.r.Release(nil); err != nil {
		return 0, err
	}
	return b, nil
}

// NewIOSource wraps a plain io.Reader (e.g. a file opened by the CLI) as a
// Source, via a bufiox.DefaultReader.
func NewIOSource(r io.Reader) Source {
	return NewBufioxSource(bufiox.NewDefaultReader(r))
}

// InputBuf is the savepoint-capable input buffer described in the core
// spec: a ring buffer, a non-mutating reader over it, and a handle to the
// underlying stream, with committed/tentative byte counters and a saving
// flag.
type InputBuf struct {
	src    Source
	rb     *ringbuf.Ring
	reader *ringbuf.Reader

	saving    bool
	committed int64
	tentative int64
	ioErr     error
}

// New creates an InputBuf reading from src, with a ring buffer of the
// given capacity bounding maximum look-ahead.
func New(src Source, capacity int) *InputBuf {
	rb := ringbuf.New(capacity)
	return &InputBuf{
		src:    src,
		rb:     rb,
		reader: ringbuf.NewReader(rb),
	}
}

// Get produces the next byte, or io.EOF. Behavior depends on the saving
// flag: when not saving, it first drains the ring, then pulls from the
// stream; when saving, it first replays the reader, then pulls from the
// stream while also appending to the ring so a later rewind can replay
// it again.
func (b *InputBuf) Get() (byte, error) {
	if b.saving {
		c, err := b.reader.Get()
		if err == nil {
			b.tentative++
			return c, nil
		}
		c, err = b.pull()
		if err != nil {
			return 0, err
		}
		if putErr := b.rb.Put(c); putErr != nil {
			// Ring is full: look-ahead has exceeded its budget. Treat
			// as an exhausted sub-parser rather than corrupting state.
			return 0, putErr
		}
		// Re-sync the reader's cursor onto the freshly appended byte so
		// a later Reset still replays it (Consume semantics rely on a
		// reader whose cursor sits exactly at the live boundary).
		b.reader.ToEnd()
		b.tentative++
		return c, nil
	}

	c, err := b.rb.Get()
	if err == nil {
		b.committed++
		return c, nil
	}
	c, err = b.pull()
	if err != nil {
		return 0, err
	}
	b.committed++
	return c, nil
}

func (b *InputBuf) pull() (byte, error) {
	c, err := b.src.ReadByte()
	if err != nil {
		if err != io.EOF {
			b.ioErr = err
		}
		return 0, err
	}
	return c, nil
}

// Save enters saving mode. If already saving, it reports ErrAlreadySaving
// (non-fatal); callers that see this error are expected to treat it as a
// bug in their own nesting, since savepoints never nest in the core.
func (b *InputBuf) Save() error {
	if b.saving {
		return ErrAlreadySaving
	}
	b.saving = true
	b.reader.Reset()
	b.tentative = 0
	return nil
}

// Rewind discards the effect of everything read since Save: the reader
// resets to the ring's head and the saving flag clears, so subsequent
// Get calls return the same bytes again.
func (b *InputBuf) Rewind() {
	b.reader.Reset()
	b.saving = false
	b.tentative = 0
}

// Commit keeps everything read since Save: the ring's head advances to
// the reader's cursor, the saving flag clears, and the tentative count
// is folded into the committed count. A no-op if not saving, mirroring
// inputbuf.c's inputbuf_forget guard: a caller that already Rewind()'d
// internally (as readCSISequence and handleNF do before re-reading a
// recognized sequence in non-saving mode) must not have the ring's head
// yanked back to the stale cursor left over from the earlier save.
func (b *InputBuf) Commit() {
	if !b.saving {
		return
	}
	b.reader.Consume()
	b.saving = false
	b.committed += b.tentative
	b.tentative = 0
}

// Committed returns the number of bytes definitively consumed so far,
// used to synchronize a timings file's delay marks.
func (b *InputBuf) Committed() int64 {
	return b.committed
}

// IOErr returns the last non-EOF error observed while pulling from the
// underlying stream, or nil.
func (b *InputBuf) IOErr() error {
	return b.ioErr
}
