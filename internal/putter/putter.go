// Package putter implements the line-wrapping, sigil-prefixed output
// writer the recognizer core treats as an external collaborator: it
// tracks the current line length, splits lines that would overflow a
// configured width, and re-starts continuation lines with caller-supplied
// prefix/suffix markers.
package putter

import (
	"fmt"

	"github.com/cloudwego/gopkg/bufiox"
)

// DefaultLineMax matches the reference implementation's DEFAULT_LINE_MAX.
const DefaultLineMax = 78

// Colorizer decorates a sigil string for a given role before it is
// written, e.g. wrapping it in SGR color escapes. The zero Colorizer (nil)
// passes text through unchanged.
type Colorizer func(role string, sigil string) string

// Putter is a line-wrapping writer over a bufiox.Writer sink.
type Putter struct {
	w       bufiox.Writer
	nc      int
	presep  string
	postsep string
	linemax int
	color   Colorizer
}

// New creates a Putter writing to w (typically wrapping os.Stdout),
// wrapping lines at linemax characters. A linemax <= 0 selects
// DefaultLineMax.
func New(w bufiox.Writer, linemax int) *Putter {
	if linemax <= 0 {
		linemax = DefaultLineMax
	}
	return &Putter{w: w, linemax: linemax}
}

// SetColorizer installs a Colorizer used to decorate sigils written by
// Start and Single. Passing nil disables colorization.
func (p *Putter) SetColorizer(c Colorizer) {
	p.color = c
}

func (p *Putter) ensureSpace(addition int) error {
	if p.nc+addition > p.linemax || p.nc+len(p.presep) == p.linemax {
		if _, err := p.w.WriteBinary([]byte(p.presep + "\n" + p.postsep)); err != nil {
			return err
		}
		p.nc = len(p.postsep)
	}
	p.nc += addition
	return nil
}

// Start begins a new logical line with the given role (used only to pick
// a Colorizer decoration) and sigil text, registering pre/post as the
// continuation markers used if this line must wrap before Finish.
func (p *Putter) Start(role, sigil, pre, post string) error {
	p.presep = pre
	p.postsep = post

	text := sigil
	if p.color != nil {
		text = p.color(role, sigil)
	}
	if p.nc > 0 {
		if _, err := p.w.WriteBinary([]byte{'\n'}); err != nil {
			return err
		}
	}
	p.nc = len(sigil)
	_, err := p.w.WriteBinary([]byte(text))
	return err
}

// Finish closes the logical line opened by Start (or a bare Single) with
// the given closing text, e.g. ".". It clears the continuation markers.
func (p *Putter) Finish(s string) error {
	p.presep = ""
	p.postsep = ""

	if p.nc+len(s) > p.linemax {
		if _, err := p.w.WriteBinary([]byte{'\n'}); err != nil {
			return err
		}
	}
	p.nc = 0
	_, err := p.w.WriteBinary([]byte(s + "\n"))
	return err
}

// Putc writes a single byte, wrapping the line first if needed.
func (p *Putter) Putc(c byte) error {
	if err := p.ensureSpace(1); err != nil {
		return err
	}
	_, err := p.w.WriteBinary([]byte{c})
	return err
}

// Puts writes a string, wrapping the line first if needed.
func (p *Putter) Puts(s string) error {
	if err := p.ensureSpace(len(s)); err != nil {
		return err
	}
	_, err := p.w.WriteBinary([]byte(s))
	return err
}

// Printf formats and writes text, wrapping the line first if needed.
func (p *Putter) Printf(format string, args ...interface{}) error {
	s := fmt.Sprintf(format, args...)
	return p.Puts(s)
}

// Single combines Start+Printf+Finish with empty continuation markers:
// it emits one complete, self-contained logical line.
func (p *Putter) Single(role, sigil, format string, args ...interface{}) error {
	if err := p.Start(role, sigil, "", ""); err != nil {
		return err
	}
	if err := p.Printf(format, args...); err != nil {
		return err
	}
	return p.flushLine()
}

func (p *Putter) flushLine() error {
	p.presep = ""
	p.postsep = ""
	p.nc = 0
	_, err := p.w.WriteBinary([]byte{'\n'})
	return err
}

// SingleEsc emits a ":"-sigil echoed-escape-bytes line.
func (p *Putter) SingleEsc(format string, args ...interface{}) error {
	return p.Single("esc", ": ", format, args...)
}

// SingleDelay emits an "@"-sigil delay line.
func (p *Putter) SingleDelay(format string, args ...interface{}) error {
	return p.Single("delay", "@ ", format, args...)
}

// SingleLabel emits a "&"-sigil acronym/label line.
func (p *Putter) SingleLabel(format string, args ...interface{}) error {
	return p.Single("label", "& ", format, args...)
}

// SingleDesc emits a "\""-sigil prose description line.
func (p *Putter) SingleDesc(format string, args ...interface{}) error {
	return p.Single("desc", "\" ", format, args...)
}

// Flush flushes the underlying writer.
func (p *Putter) Flush() error {
	return p.w.Flush()
}
