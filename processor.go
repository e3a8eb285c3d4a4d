package teseq

import (
	"context"
	"io"

	"github.com/flw-cn/teseq/internal/inputbuf"
	"github.com/flw-cn/teseq/internal/putter"
)

// Processor drives one byte stream through the recognizer's top-level
// state machine, writing its transcript through a Putter. It corresponds
// to teseq.c's struct processor plus the top-level process/init_state/
// finish_state functions, generalized to carry an explicit Config
// instead of reading process-wide globals.
type Processor struct {
	ib   *inputbuf.InputBuf
	putr *putter.Putter
	cfg  Config

	st       processorState
	printDot bool

	delays *DelayReader
}

// NewProcessor creates a Processor reading from ib and writing through
// putr. delays may be nil to disable "@" delay lines.
func NewProcessor(cfg Config, ib *inputbuf.InputBuf, putr *putter.Putter, delays *DelayReader) *Processor {
	return &Processor{
		ib:     ib,
		putr:   putr,
		cfg:    cfg,
		st:     stInit,
		delays: delays,
	}
}

// Run drives the processor until the input is exhausted, ctx is
// cancelled, or an unrecoverable error occurs. It returns nil on a clean
// EOF. Mirrors the reference's top-level read loop around process().
func (pr *Processor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return pr.Finish()
		default:
		}

		if err := pr.emitDelay(); err != nil {
			return err
		}

		c, err := pr.ib.Get()
		if err != nil {
			if err == io.EOF {
				return pr.Finish()
			}
			return err
		}

		if err := pr.process(c); err != nil {
			return err
		}
	}
}

// SkipPreamble processes bytes up to and including the first newline
// without consulting a delay reader, matching the reference's handling
// of script(1)'s leading timestamp line, which timings files do not
// assign a delay mark to. Call it once, before SetDelays, when a
// timings file is in use.
func (pr *Processor) SkipPreamble(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		c, err := pr.ib.Get()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if err := pr.process(c); err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

// SetDelays installs (or clears, with nil) the delay reader consulted
// by Run before each byte, resetting its count baseline to the
// processor's current committed-byte count.
func (pr *Processor) SetDelays(d *DelayReader) {
	if d != nil {
		d.baseline = pr.ib.Committed()
	}
	pr.delays = d
}

// Finish flushes any line left open by a partially-processed unit of
// work, then flushes the underlying writer. Safe to call once at
// shutdown, mirroring the reference's use of finish_state from its
// signal handler and end-of-input path.
func (pr *Processor) Finish() error {
	if err := pr.finishState(); err != nil {
		return err
	}
	return pr.putr.Flush()
}

// process feeds one byte through the top-level state machine, mirroring
// teseq.c's process. ST_INIT/ST_TEXT/ST_CTRL transitions reprocess the
// same byte under a new state without consuming another one, matching
// the reference's "continue" statements.
func (pr *Processor) process(c byte) error {
	for {
		switch pr.st {
		case stInit:
			if err := pr.initState(c); err != nil {
				return err
			}
			continue

		case stText:
			switch {
			case c == '\n':
				if err := pr.putr.Finish("|."); err != nil {
					return err
				}
				pr.st = stInit
			case !isNormalText(c):
				if err := pr.finishState(); err != nil {
					return err
				}
				continue
			default:
				if err := pr.putr.Putc(c); err != nil {
					return err
				}
			}

		case stCtrl:
			if isNormalText(c) {
				if err := pr.finishState(); err != nil {
					return err
				}
				continue
			}
			if c == cESC {
				handled, err := pr.handleEscapeSequence()
				if err != nil {
					return err
				}
				if handled {
					return nil
				}
			}
			if err := pr.printControl(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// emitDelay asks the delay reader (if any) whether the current committed
// byte count has crossed its next mark, and if so writes an "@" line.
func (pr *Processor) emitDelay() error {
	if pr.delays == nil || !pr.delays.crossed(pr.ib.Committed()) {
		return nil
	}
	if err := pr.finishState(); err != nil {
		return err
	}
	return pr.delays.emitDue(pr.ib.Committed(), func(seconds float64) error {
		return pr.putr.SingleDelay("%f", seconds)
	})
}
