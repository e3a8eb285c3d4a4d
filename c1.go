package teseq

// c1Table maps a C1 control's offset (final byte of "ESC "+0x40..0x5F,
// i.e. final-0x40) to its acronym/label pair. Grounded verbatim on
// original_source/src/c1.h's c1_labels[][2].
var c1Table = [0x20]c0Info{
	0x00: {},
	0x01: {},
	0x02: {"BPH", "BREAK PERMITTED HERE"},
	0x03: {"NBH", "NO BREAK HERE"},
	0x04: {},
	0x05: {"NEL", "NEXT LINE"},
	0x06: {"SSA", "START OF SELECTED AREA"},
	0x07: {"ESA", "END OF SELECTED AREA"},
	0x08: {"HTS", "CHARACTER TABULATION SET"},
	0x09: {"HTJ", "CHARACTER TABULATION WITH JUSTIFICATION"},
	0x0A: {"VTS", "LINE TABULATION SET"},
	0x0B: {"PLD", "PARTIAL LINE FORWARD"},
	0x0C: {"PLU", "PARTIAL LINE BACKWARD"},
	0x0D: {"RI", "REVERSE LINE FEED"},
	0x0E: {"SS2", "SINGLE-SHIFT TWO"},
	0x0F: {"SS3", "SINGLE-SHIFT THREE"},
	0x10: {"DCS", "DEVICE CONTROL STRING"},
	0x11: {"PU1", "PRIVATE USE ONE"},
	0x12: {"PU2", "PRIVATE USE TWO"},
	0x13: {"STS", "SET TRANSMIT STATE"},
	0x14: {"CCH", "CANCEL CHARACTER"},
	0x15: {"MW", "MESSAGE WAITING"},
	0x16: {"SPA", "START OF GUARDED AREA"},
	0x17: {"EPA", "END OF GUARDED AREA"},
	0x18: {"SOS", "START OF STRING"},
	0x19: {},
	0x1A: {"SCI", "SINGLE CHARACTER INTRODUCER"},
	0x1B: {"CSI", "CONTROL SEQUENCE INTRODUCER"},
	0x1C: {"ST", "STRING TERMINATOR"},
	0x1D: {"OSC", "OPERATING SYSTEM COMMAND"},
	0x1E: {"PM", "PRIVACY MESSAGE"},
	0x1F: {"APC", "APPLICATION PROGRAM COMMAND"},
}

// c1ForFinal looks up the C1 entry for an escape sequence's final byte
// (0x40-0x5F). 0x5B ('[') has a CSI entry here, but handleC1 routes '['
// to the CSI sub-parser instead of this table.
func c1ForFinal(final byte) (c0Info, bool) {
	if final < 0x40 || final > 0x5F {
		return c0Info{}, false
	}
	info := c1Table[final-0x40]
	return info, info.acro != ""
}
