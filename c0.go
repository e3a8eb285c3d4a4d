package teseq

// c0Info holds the acronym and long name for one C0 control character
// (0x00-0x1F, plus DEL at 0x7F). Generalized from the single-string
// control constants in kylelemons-goat/term/codes.go into the
// {acronym, name} pairs the core needs to name each control.
type c0Info struct {
	acro string
	name string
}

// c0Table is indexed by the control byte itself (0x00-0x1F); DEL (0x7F)
// is handled separately since it sits far outside this range. 0x1C-0x1F
// use the reference's control_names[] acronyms (IS4/IS3/IS2/IS1) rather
// than the teacher's FS/GS/RS/US, since the reference governs exact
// output naming.
var c0Table = [0x20]c0Info{
	0x00: {"NUL", "NULL"},
	0x01: {"SOH", "START OF HEADING"},
	0x02: {"STX", "START OF TEXT"},
	0x03: {"ETX", "END OF TEXT"},
	0x04: {"EOT", "END OF TRANSMISSION"},
	0x05: {"ENQ", "ENQUIRY"},
	0x06: {"ACK", "ACKNOWLEDGE"},
	0x07: {"BEL", "BELL"},
	0x08: {"BS", "BACKSPACE"},
	0x09: {"HT", "CHARACTER TABULATION"},
	0x0A: {"LF", "LINE FEED"},
	0x0B: {"VT", "LINE TABULATION"},
	0x0C: {"FF", "FORM FEED"},
	0x0D: {"CR", "CARRIAGE RETURN"},
	0x0E: {"SO", "SHIFT OUT"},
	0x0F: {"SI", "SHIFT IN"},
	0x10: {"DLE", "DATA LINK ESCAPE"},
	0x11: {"DC1", "DEVICE CONTROL ONE"},
	0x12: {"DC2", "DEVICE CONTROL TWO"},
	0x13: {"DC3", "DEVICE CONTROL THREE"},
	0x14: {"DC4", "DEVICE CONTROL FOUR"},
	0x15: {"NAK", "NEGATIVE ACKNOWLEDGE"},
	0x16: {"SYN", "SYNCHRONOUS IDLE"},
	0x17: {"ETB", "END OF TRANSMISSION BLOCK"},
	0x18: {"CAN", "CANCEL"},
	0x19: {"EM", "END OF MEDIUM"},
	0x1A: {"SUB", "SUBSTITUTE"},
	0x1B: {"ESC", "ESCAPE"},
	0x1C: {"IS4", "FILE SEPARATOR"},
	0x1D: {"IS3", "GROUP SEPARATOR"},
	0x1E: {"IS2", "RECORD SEPARATOR"},
	0x1F: {"IS1", "UNIT SEPARATOR"},
}

const delInfoAcro = "DEL"

// c0Name renders the control name for byte c (which must be < 0x20, or
// == 0x7F for DEL), optionally suffixed with "/^X" per Config.CaretNames.
func c0Name(c byte, caret bool) string {
	var acro string
	if c == 0x7F {
		acro = delInfoAcro
	} else {
		acro = c0Table[c].acro
	}
	if !caret {
		return acro
	}
	x := (c + 0x40) & 0x7f
	return acro + "/^" + string(rune(x))
}
