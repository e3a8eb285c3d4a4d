package teseq

import "github.com/flw-cn/teseq/internal/putter"

// privateModeMsgs holds the set/reset description pair for one DEC/XTerm
// private mode (CSI ? Pm h/l). Either half may be "" when the reference
// only documents one direction. Mode 46 carries distinct set and reset
// messages, unlike the C source, which gives both directions the "set"
// message (see DESIGN.md).
type privateModeMsgs struct {
	set   string
	reset string
}

// privateModeTable is grounded verbatim on original_source/src/csi.c's
// handle_private_mode, based on the VT220 Programmer Reference Manual and
// Xterm's ctlseqs.txt.
var privateModeTable = map[uint32]privateModeMsgs{
	1: {"(DEC) Cursor key mode.", "(DEC) Cursor key mode off."},
	2: {"(XTerm) Designate US-ASCII for charater sets G0-G3, and set VT100 mode.",
		"(DEC) Designate VT52 mode."},
	3: {"(DEC) 132 columns per line.", "(DEC) 80 columns per line."},
	4: {"(DEC) Smooth scrolling: allow no more than 6 lines to be added\n\"  to the screen per second.",
		"(DEC) Fast scrolling: lines are added to the screen as fast as possible."},
	5:  {"(DEC) Reverse video (dark on light).", "(DEC) Normal video (light on dark)."},
	7:  {"(DEC) Text auto-wrap mode.", "(DEC) Text auto-wrap mode off."},
	9:  {"(XTerm) Send mouse X & Y on button press.", "(XTerm) Don't send mouse X & Y on button press."},
	10: {"(Rxvt) Show toolbar.", "(Rxvt) Hide toolbar."},
	12: {"(Att610) Start blinking cursor.", "(Att610) Stop blinkin cursor."},
	25: {"(DEC) Show cursor.", "(DEC) Hide cursor."},
	30: {"(Rxvt) Show scrollbar.", "(Rxvt) Don't show scrollbar."},
	40: {"(Xterm) Allow 80 -> 132 mode.", "(Xterm) Disallow 80 -> 132 mode."},
	41: {"(Xterm) Activate workaround for more(1) bug.", "(Xterm) Disable workaround for more(1) bug."},
	42: {"(DEC) National character set mode.", "(DEC) Multinational character set mode."},
	44: {"(Xterm) Turn on margin bell.", "(Xterm) Turn off margin bell."},
	45: {"(Xterm) Reverse-wraparound mode.", "(Xterm) Reverse-wraparound mode off."},
	// Mode 46: the reference's set/reset branches both assigned the "start
	// logging" message (an apparent copy-paste bug); the redesigned
	// behavior here gives reset its own, evidently-intended message.
	46: {"(Xterm) Start logging.", "(Xterm) Stop logging."},
	47: {"(Xterm) Use alternate screen buffer.", "(Xterm) Use normal screen buffer."},
	66: {"(DEC) Application keypad.", "(DEC) Numeric keypad."},
	67: {"(DEC) Backarrow key sends backspace.", "(DEC) Backarrow key sends delete."},
	1000: {"(Xterm) Send mouse X & Y on button press and release.",
		"(Xterm) Don't send mouse X & Y on button press and release."},
	1001: {"(Xterm) Activate hilite mouse tracking.", "(Xterm) Disable hilite mouse tracking."},
	1002: {"(Xterm) Activate cell motion mouse tracking.", "(Xterm) Disable cell motion mouse tracking."},
	1003: {"(Xterm) Activate all motion mouse tracking.", "(Xterm) Disable all motion mouse tracking."},
	1004: {"(Xterm) Send FocusIn/FocusOut events.", "(Xterm) Don't send FocusIn/FocusOut events."},
	1010: {"(Rxvt) Scroll to bottom on tty output.", "(Rxvt) Don't scroll to bottom on tty output."},
	1011: {"(Rxvt) Scroll to bottom on key press.", "(Rxvt) Don't scroll to bottom on key press."},
	1034: {"(Xterm) Interpret meta key, sets eighth bit.", "(Xterm) Don't interpret meta key."},
	1035: {"(Xterm) Enable special modifiers for Alt and NumLock keys.",
		"(Xterm) Disable special modifiers for Alt and NumLock keys."},
	1036: {"(Xterm) Send ESC when Meta modifies a key.", "(Xterm) Don't send ESC when Meta modifies a key."},
	1037: {"(Xterm) Send DEL from the editing-keypad Delete key.",
		"(Xterm) Send VT220 Remove from the editing-keypad Delete key."},
	1039: {"(Xterm) Send ESC when Alt modifies a key.", "(Xterm) Don't send ESC when Alt modifies a key."},
	1040: {"(Xterm) Keep selection even if not highlighted.",
		"(Xterm) Do not keep selection even if not highlighted."},
	1041: {"(Xterm) Use the CLIPBOARD selection.", "(Xterm) Don't use the CLIPBOARD selection."},
	1042: {"(Xterm) Enable Urgency window manager hint when BEL is received.",
		"(Xterm) Disable Urgency window manager hint when BEL is received."},
	1043: {"(Xterm) Enable raising of the window when BEL is received.",
		"(Xterm) Disable raising of the window when BEL is received."},
	1047: {"(Xterm) Use the alternate screen buffer.", "(Xterm) Use the normal screen buffer."},
	1048: {"(Xterm) Save the cursor position.", "(Xterm) Restore the cursor position."},
	1049: {"(Xterm) Save the cursor position and use the alternate screen buffer,\n\"  clearing it first.",
		"(Xterm) Leave the alternate screen buffer and restore the cursor."},
	2004: {"(Xterm) Set bracketed paste mode.", "(Xterm) Reset bracketed paste mode."},
}

// describePrivateMode renders the description for a CSI ? Pm h/l private
// mode, or "" if the mode is unknown.
func describePrivateMode(param uint32, set bool) string {
	msgs, ok := privateModeTable[param]
	if !ok {
		return ""
	}
	if set {
		return msgs.set
	}
	return msgs.reset
}

func handlePrivateMode(putr *putter.Putter, param uint32, set bool) error {
	if msg := describePrivateMode(param, set); msg != "" {
		return putr.SingleDesc("%s", msg)
	}
	return nil
}
