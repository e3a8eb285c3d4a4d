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

//go:build linux

// Package termios implements low-level terminal settings needed to put a
// tty into raw mode for a transcript-capture session.
package termios

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type (
	inMode    uint32
	outMode   uint32
	ctlMode   uint32
	locMode   uint32
	charIndex int
)

// Input Flags
const (
	IGNBRK  inMode = unix.IGNBRK  // ignore BREAK condition
	BRKINT  inMode = unix.BRKINT  // map BREAK to SIGINTR
	IGNPAR  inMode = unix.IGNPAR  // ignore (discard) parity errors
	PARMRK  inMode = unix.PARMRK  // mark parity and framing errors
	INPCK   inMode = unix.INPCK   // enable checking of parity errors
	ISTRIP  inMode = unix.ISTRIP  // strip 8th bit off chars
	INLCR   inMode = unix.INLCR   // map NL into CR
	IGNCR   inMode = unix.IGNCR   // ignore CR
	ICRNL   inMode = unix.ICRNL   // map CR to NL (ala CRMOD)
	IXON    inMode = unix.IXON    // enable output flow control
	IXOFF   inMode = unix.IXOFF   // enable input flow control
	IXANY   inMode = unix.IXANY   // any char will restart after stop
	IMAXBEL inMode = unix.IMAXBEL // ring bell on input queue full
	IUTF8   inMode = unix.IUTF8   // maintain state for UTF-8 VERASE
)

// Output Flags
const (
	OPOST  outMode = unix.OPOST  // enable following output processing
	ONLCR  outMode = unix.ONLCR  // map NL to CR-NL (ala CRMOD)
	OCRNL  outMode = unix.OCRNL  // map CR to NL on output
	ONOCR  outMode = unix.ONOCR  // no CR output at column 0
	ONLRET outMode = unix.ONLRET // NL performs CR function
	OFILL  outMode = unix.OFILL  // use fill characters for delay
	NLDLY  outMode = unix.NLDLY  // \n delay
	TABDLY outMode = unix.TABDLY // horizontal tab delay
	CRDLY  outMode = unix.CRDLY  // \r delay
	FFDLY  outMode = unix.FFDLY  // form feed delay
	BSDLY  outMode = unix.BSDLY  // \b delay
	VTDLY  outMode = unix.VTDLY  // vertical tab delay
	OFDEL  outMode = unix.OFDEL  // fill is DEL, else NUL
)

// Control Flags
const (
	CSIZE  ctlMode = unix.CSIZE  // character size mask
	CS6    ctlMode = unix.CS6    // 6 bits
	CS7    ctlMode = unix.CS7    // 7 bits
	CS8    ctlMode = unix.CS8    // 8 bits
	CSTOPB ctlMode = unix.CSTOPB // send 2 stop bits
	CREAD  ctlMode = unix.CREAD  // enable receiver
	PARENB ctlMode = unix.PARENB // parity enable
	PARODD ctlMode = unix.PARODD // odd parity, else even
	HUPCL  ctlMode = unix.HUPCL  // hang up on last close
	CLOCAL ctlMode = unix.CLOCAL // ignore modem status lines
)

// Local flags
const (
	ECHOKE  locMode = unix.ECHOKE  // visual erase for line kill
	ECHOE   locMode = unix.ECHOE   // visually erase chars
	ECHOK   locMode = unix.ECHOK   // echo NL after line kill
	ECHO    locMode = unix.ECHO    // enable echoing
	ECHONL  locMode = unix.ECHONL  // echo NL even if ECHO is off
	ECHOPRT locMode = unix.ECHOPRT // visual erase mode for hardcopy
	ECHOCTL locMode = unix.ECHOCTL // echo control chars as ^(Char)
	ISIG    locMode = unix.ISIG    // enable signals INTR, QUIT, [D]SUSP
	ICANON  locMode = unix.ICANON  // canonicalize input lines
	IEXTEN  locMode = unix.IEXTEN  // enable DISCARD and LNEXT
	TOSTOP  locMode = unix.TOSTOP  // stop background jobs from output
	FLUSHO  locMode = unix.FLUSHO  // output being flushed (state)
	PENDIN  locMode = unix.PENDIN  // retype pending input (state)
	NOFLSH  locMode = unix.NOFLSH  // don't flush after interrupt
)

// Control Character Indices
const (
	VEOF     charIndex = unix.VEOF
	VEOL     charIndex = unix.VEOL
	VEOL2    charIndex = unix.VEOL2
	VERASE   charIndex = unix.VERASE
	VWERASE  charIndex = unix.VWERASE
	VKILL    charIndex = unix.VKILL
	VREPRINT charIndex = unix.VREPRINT
	VINTR    charIndex = unix.VINTR
	VQUIT    charIndex = unix.VQUIT
	VSUSP    charIndex = unix.VSUSP
	VSTART   charIndex = unix.VSTART
	VSTOP    charIndex = unix.VSTOP
	VLNEXT   charIndex = unix.VLNEXT
	VDISCARD charIndex = unix.VDISCARD
	VMIN     charIndex = unix.VMIN
	VTIME    charIndex = unix.VTIME
	NCC      charIndex = unix.NCCS
)

// TermSettings contain both the original settings from when it was created
// and the current settings being manipulated. At any time, Reset will
// restore the terminal to its original state.
type TermSettings struct {
	fd       int
	original unix.Termios
	current  unix.Termios
}

// NewTermSettings examines the state of the current terminal and
// stores it in a fresh TermSettings.
func NewTermSettings(fd int) (*TermSettings, error) {
	tio := &TermSettings{fd: fd}

	cur, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	tio.current = *cur
	tio.original = *cur
	return tio, nil
}

// Char returns the rune associated with the given control character.
// These will generally be ASCII control characters.
func (tio *TermSettings) Char(idx charIndex) rune {
	return rune(tio.current.Cc[idx])
}

// String returns a debugging string which contains low-level
// information about the terminal.
func (tio *TermSettings) String() string {
	return fmt.Sprintf(`Terminal[%d]:
  Input   = 0x%X
  Output  = 0x%X
  Control = 0x%X
  Local   = 0x%X
  Chars   = %v
`,
		tio.fd,
		tio.current.Iflag,
		tio.current.Oflag,
		tio.current.Cflag,
		tio.current.Lflag,
		tio.current.Cc)
}

// GetSize attempts to determine the size of the terminal with which
// this TermSettings is associated and return the number of columns (the
// width) and the number of rows (the height).
func (tio *TermSettings) GetSize() (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(tio.fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Raw sets the terminal to a very minimal raw mode suitable for capturing
// a byte-exact transcript of everything sent to it: no canonicalization,
// no echo, no signal generation, one byte at a time.
//
// The changes are applied immediately. Callers should defer a call to
// Reset so the terminal is restored when the process exits.
func (tio *TermSettings) Raw() error {
	makeRaw(&tio.current)
	return tio.Apply()
}

// Reset sets the terminal settings to match those that were in effect
// when the call to NewTermSettings was made.
func (tio *TermSettings) Reset() error {
	tio.current = tio.original
	return tio.Apply()
}

func (tio *TermSettings) SetInput(mode inMode)    { tio.current.Iflag = uint32(mode) }
func (tio *TermSettings) SetOutput(mode outMode)  { tio.current.Oflag = uint32(mode) }
func (tio *TermSettings) SetControl(mode ctlMode) { tio.current.Cflag = uint32(mode) }
func (tio *TermSettings) SetLocal(mode locMode)   { tio.current.Lflag = uint32(mode) }

// Apply applies the settings currently stored in tio. This is mostly
// useful for maintaining multiple TermSettings for different modes, and
// you can simply Apply whichever you need.
func (tio *TermSettings) Apply() error {
	return unix.IoctlSetTermios(tio.fd, ioctlSetTermios, &tio.current)
}
