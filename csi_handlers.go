package teseq

import (
	"errors"

	"github.com/flw-cn/teseq/internal/putter"
)

// csiNoHandler is the sentinel for an unassigned dispatch slot, mirroring
// csi_no_handler ({NULL, NULL}).
var csiNoHandler = &csiHandler{}

// csiHandlers is the standard (no-intermediate) CSI dispatch table, indexed
// by final-0x40. Grounded verbatim on original_source/src/csi.c's
// csi_handlers[].
var csiHandlers = [0x30]csiHandler{
	0x00: {"ICH", "INSERT CHARACTER", csiFuncPN, csiDoICH, 1, csiDefaultNone},
	0x01: {"CUU", "CURSOR UP", csiFuncPN, csiDoCUU, 1, csiDefaultNone},
	0x02: {"CUD", "CURSOR DOWN", csiFuncPN, csiDoCUU, 1, csiDefaultNone},
	0x03: {"CUF", "CURSOR RIGHT", csiFuncPN, csiDoCUU, 1, csiDefaultNone},
	0x04: {"CUB", "CURSOR LEFT", csiFuncPN, csiDoCUU, 1, csiDefaultNone},
	0x05: {"CNL", "CURSOR NEXT LINE", csiFuncPN, csiDoCNL, 1, csiDefaultNone},
	0x06: {"CPL", "CURSOR PRECEDING LINE", csiFuncPN, csiDoCNL, 1, csiDefaultNone},
	0x07: {"CHA", "CURSOR CHARACTER ABSOLUTE", csiFuncPN, csiDoCHA, 1, csiDefaultNone},
	0x08: {"CUP", "CURSOR POSITION", csiFuncPNPN, csiDoCUP, 1, 1},
	0x09: {"CHT", "CURSOR FORWARD TABULATION", csiFuncPN, csiDoCHT, 1, csiDefaultNone},
	0x0A: {"ED", "ERASE IN PAGE", csiFuncPS, csiDoED, 0, csiDefaultNone},
	0x0B: {"EL", "ERASE IN LINE", csiFuncPS, csiDoED, 0, csiDefaultNone},
	0x0C: {"IL", "INSERT LINE", csiFuncPN, csiDoIL, 1, csiDefaultNone},
	0x0D: {"DL", "DELETE LINE", csiFuncPN, csiDoDL, 1, csiDefaultNone},
	0x0E: {"EF", "ERASE IN FIELD", csiFuncPS, csiDoEF, 0, csiDefaultNone},
	0x0F: {"EA", "ERASE IN AREA", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x10: {"DCH", "DELETE CHARACTER", csiFuncPN, csiDoDCH, 1, csiDefaultNone},
	0x11: {"SEE", "SELECT EDITING EXTENT", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x12: {"CPR", "ACTIVE POSITION REPORT", csiFuncPNPN, csiDoCPR, 1, 1},
	0x13: {"SU", "SCROLL UP", csiFuncPN, csiDoSU, 1, csiDefaultNone},
	0x14: {"SD", "SCROLL DOWN", csiFuncPN, csiDoSU, 1, csiDefaultNone},
	0x15: {"NP", "NEXT PAGE", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x16: {"PP", "PRECEDING PAGE", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x17: {"CTC", "CURSOR TABULATION CONTROL", csiFuncPSAny, csiDoCTC, 0, csiDefaultNone},
	0x18: {"ECH", "ERASE CHARACTER", csiFuncPN, csiDoECH, 1, csiDefaultNone},
	0x19: {"CVT", "CURSOR LINE TABULATION", csiFuncPN, csiDoCHT, 1, csiDefaultNone},
	0x1A: {"CBT", "CURSOR BACKWARD TABULATION", csiFuncPN, csiDoCHT, 1, csiDefaultNone},
	0x1B: {"SRS", "START REVERSED STRING", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x1C: {"PTX", "PARALLEL TEXTS", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x1D: {"SDS", "START DIRECTED STRING", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x1E: {"SIMD", "SELECT IMPLICIT MOVEMENT DIRECTION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x1F: {},
	0x20: {"HPA", "CHARACTER POSITION ABSOLUTE", csiFuncPN, csiDoCHA, 1, csiDefaultNone},
	0x21: {"HPR", "CHARACTER POSITION FORWARD", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x22: {"REP", "REPEAT", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x23: {"DA", "DEVICE ATTRIBUTES", csiFuncPS, csiDoDA, 0, csiDefaultNone},
	0x24: {"VPA", "LINE POSITION ABSOLUTE", csiFuncPN, csiDoVPA, 1, csiDefaultNone},
	0x25: {"VPR", "LINE POSITION FORWARD", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x26: {"HVP", "CHARACTER AND LINE POSITION", csiFuncPNPN, csiDoCUP, 1, 1},
	0x27: {"TBC", "TABULATION CLEAR", csiFuncPS, csiDoTBC, 0, csiDefaultNone},
	0x28: {"SM", "SET MODE", csiFuncPSAny, csiDoSM, csiDefaultNone, csiDefaultNone},
	0x29: {"MC", "MEDIA COPY", csiFuncPS, csiDoMC, 0, csiDefaultNone},
	0x2A: {"HPB", "CHARACTER POSITION BACKWARD", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x2B: {"VPB", "LINE POSITION BACKWARD", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x2C: {"RM", "RESET MODE", csiFuncPSAny, csiDoSM, csiDefaultNone, csiDefaultNone},
	0x2D: {"SGR", "SELECT GRAPHIC RENDITION", csiFuncPSAny, csiDoSGR, 0, csiDefaultNone},
	0x2E: {"DSR", "DEVICE STATUS REPORT", csiFuncPS, csiDoDSR, 0, csiDefaultNone},
	0x2F: {"DAQ", "DEFINE AREA QUALIFICATION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
}

// csiSpcHandlers is the space-intermediate ("ESC [ ... 0x20 FINAL") CSI
// dispatch table, indexed by final-0x40. Grounded verbatim on
// original_source/src/csi.c's csi_spc_handlers[].
var csiSpcHandlers = [0x30]csiHandler{
	0x00: {"SL", "SCROLL LEFT", csiFuncPN, csiDoSU, 1, csiDefaultNone},
	0x01: {"SR", "SCROLL RIGHT", csiFuncPN, csiDoSU, 1, csiDefaultNone},
	0x02: {"GSM", "GRAPHIC SIZE MODIFICATION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x03: {"GSS", "GRAPHIC SIZE SELECTION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x04: {"FNT", "FONT SELECTION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x05: {"TSS", "THIN SPACE SPECIFICATION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x06: {"JFY", "JUSTIFY", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x07: {"SPI", "SPACING INCREMENT", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x08: {"QUAD", "QUAD", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x09: {"SSU", "SELECT SIZE UNIT", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x0A: {"PFS", "PAGE FORMAT SELECTION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x0B: {"SHS", "SELECT CHARACTER SPACING", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x0C: {"SVS", "SELECT LINE SPACING", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x0D: {"IGS", "IDENTIFY GRAPHIC SUBREPERTOIRE", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x0E: {},
	0x0F: {"IDCS", "IDENTIFY DEVICE CONTROL STRING", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x10: {"PPA", "PAGE POSITION ABSOLUTE", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x11: {"PPR", "PAGE POSITION FORWARD", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x12: {"PPB", "PAGE POSITION BACKWARD", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x13: {"SPD", "SELECT PRESENTATION DIRECTIONS", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x14: {"DTA", "DIMENSION TEXT AREA", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x15: {"SLH", "SET LINE HOME", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x16: {"SLL", "SET LINE LIMIT", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x17: {"FNK", "FUNCTION KEY", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x18: {"SPQR", "SELECT PRINT QUALITY AND RAPIDITY", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x19: {"SEF", "SHEET EJECT AND FEED", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x1A: {"PEC", "PRESENTATION EXPAND OR CONTRACT", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x1B: {"SSW", "SET SPACE WIDTH", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x1C: {"SACS", "SET ADDITIONAL CHARACTER SEPARATION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x1D: {"SAPV", "SELECT ALTERNATIVE PRESENTATION VARIANTS", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x1E: {"STAB", "SELECTIVE TABULATION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x1F: {"GCC", "GRAPHIC CHARACTER COMBINATION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x20: {"TATE", "TABULATION ALIGNED TRAILING EDGE", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x21: {"TALE", "TABULATION ALIGNED LEADING EDGE", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x22: {"TAC", "TABULATION ALIGNED CENTRED", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x23: {"TCC", "TABULATION CENTRED ON CHARACTER", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x24: {"TSR", "TABULATION STOP REMOVE", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x25: {"SCO", "SELECT CHARACTER ORIENTATION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x26: {"SRCS", "SET REDUCED CHARACTER SEPARATION", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x27: {"SCS", "SET CHARACTER SPACING", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x28: {"SLS", "SET LINE SPACING", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x29: {},
	0x2A: {},
	0x2B: {"SCP", "SELECT CHARACTER PATH", csiFuncNone, nil, csiDefaultNone, csiDefaultNone},
	0x2C: {},
	0x2D: {},
	0x2E: {},
	0x2F: {},
}

// Standalone handlers used outside the two regular tables, for sequences
// whose dispatch depends on the final byte being >= 0x70. Grounded on
// csi_sr_handler / csi_wm_handler / csi_decelr_handler / csi_decsle_handler
// / csi_decrqlp_handler / csi_decmouse_handler.
var (
	csiSRHandler      = &csiHandler{typ: csiFuncPNAny, fn: csiDoSR, default0: csiDefaultNone, default1: csiDefaultNone}
	csiWMHandler      = &csiHandler{typ: csiFuncPSAny, fn: csiDoWM, default0: csiDefaultNone, default1: csiDefaultNone}
	csiDECELRHandler  = &csiHandler{acro: "DECELR", label: "ENABLE LOCATOR REPORTING", typ: csiFuncPSPS, fn: csiDoDECELR}
	csiDECSLEHandler  = &csiHandler{acro: "DECSLE", label: "SELECT LOCATOR EVENTS", typ: csiFuncPSAny, fn: csiDoDECSLE}
	csiDECRQLPHandler = &csiHandler{acro: "DECRQLP", label: "REQUEST LOCATOR POSITION", typ: csiFuncPS, fn: csiDoDECRQLP}
	csiDECMouseHandler = &csiHandler{typ: csiFuncPSAny, fn: csiDoDECMouse, default0: csiDefaultNone, default1: csiDefaultNone}
)

// getCSIHandler looks up the dispatch entry for a CSI sequence, mirroring
// original_source/src/csi.c's get_csi_handler. interm holds the
// intermediate bytes collected before final (at most one is ever
// meaningful to any entry here).
func getCSIHandler(interm []byte, final byte) *csiHandler {
	if final >= 0x70 {
		switch {
		case len(interm) == 0:
			switch final {
			case 'r', 's':
				return csiSRHandler
			case 't':
				return csiWMHandler
			default:
				return csiNoHandler
			}
		case len(interm) == 1 && interm[0] == '\'':
			switch final {
			case 'z':
				return csiDECELRHandler
			case '{':
				return csiDECSLEHandler
			case '|':
				return csiDECRQLPHandler
			default:
				return csiNoHandler
			}
		case len(interm) == 1 && interm[0] == '&' && final == 'w':
			return csiDECMouseHandler
		default:
			return csiNoHandler
		}
	}
	switch {
	case len(interm) == 0:
		return &csiHandlers[final-0x40]
	case len(interm) == 1 && interm[0] == 0x20:
		return &csiSpcHandlers[final-0x40]
	default:
		return csiNoHandler
	}
}

var errCSIArity = errors.New("teseq: csi handler called with wrong parameter count")

func csiDoICH(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if len(params) != 1 {
		return errCSIArity
	}
	return putr.SingleDesc("Shift characters after the cursor to make room for %d new character%s.", params[0], plural(params[0]))
}

var cuuDirs = [4]string{"up", "down", "right", "left"}
var cuuUnits = [2]string{"line", "character"}

func csiDoCUU(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if len(params) != 1 {
		return errCSIArity
	}
	idx := final - 0x41
	return putr.SingleDesc("Move the cursor %s %d %s%s.", cuuDirs[idx], params[0], cuuUnits[idx/2], plural(params[0]))
}

var cnlDirs = [2]string{"down", "up"}

func csiDoCNL(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if len(params) != 1 {
		return errCSIArity
	}
	return putr.SingleDesc("Move the cursor to the first column, %d line%s %s.", params[0], plural(params[0]), cnlDirs[final-0x45])
}

func csiDoCHA(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if len(params) != 1 {
		return errCSIArity
	}
	return putr.SingleDesc("Move the cursor to column %d.", params[0])
}

func csiDoCUP(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if len(params) != 2 {
		return errCSIArity
	}
	return putr.SingleDesc("Move the cursor to line %d, column %d.", params[0], params[1])
}

func csiDoCHT(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if len(params) != 1 {
		return errCSIArity
	}
	hv := ""
	if final == 0x59 {
		hv = "vertical "
	}
	dir := "forward"
	if final == 0x5A {
		dir = "back"
	}
	return putr.SingleDesc("Move the cursor %s %d %stab stop%s.", dir, params[0], hv, plural(params[0]))
}

func csiDoED(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if len(params) != 1 {
		return errCSIArity
	}
	var space string
	switch final {
	case 0x4A:
		space = "screen"
	case 0x4B:
		space = "line"
	case 0x4F:
		space = "qualified area"
	default:
		return nil
	}
	switch params[0] {
	case 0:
		return putr.SingleDesc("Clear from the cursor to the end of the %s.", space)
	case 1:
		return putr.SingleDesc("Clear from the beginning of the %s to the cursor.", space)
	case 2:
		return putr.SingleDesc("Clear the %s.", space)
	}
	return nil
}

func csiDoIL(final, priv byte, putr *putter.Putter, params []uint32) error {
	if len(params) != 1 {
		return errCSIArity
	}
	if priv != 0 {
		return nil
	}
	return putr.SingleDesc("Shift lines after the cursor to make room for %d new line%s.", params[0], plural(params[0]))
}

func csiDoDL(final, priv byte, putr *putter.Putter, params []uint32) error {
	if len(params) != 1 {
		return errCSIArity
	}
	if priv != 0 {
		return nil
	}
	return putr.SingleDesc("Delete %d line%s, shifting the following lines up.", params[0], plural(params[0]))
}

func csiDoEF(final, priv byte, putr *putter.Putter, params []uint32) error {
	if len(params) != 1 {
		return errCSIArity
	}
	if priv != 0 {
		return nil
	}
	switch params[0] {
	case 0:
		return putr.SingleDesc("Clear from the cursor to the next tab stop.")
	case 1:
		return putr.SingleDesc("Clear from the previous tab stop to the cursor.")
	case 2:
		return putr.SingleDesc("Clear from the previous tab stop to the next tab stop.")
	}
	return nil
}

func csiDoDCH(final, priv byte, putr *putter.Putter, params []uint32) error {
	if len(params) != 1 {
		return errCSIArity
	}
	if priv != 0 {
		return nil
	}
	return putr.SingleDesc("Delete %d character%s, shifting the following characters left.", params[0], plural(params[0]))
}

func csiDoCPR(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if len(params) != 2 {
		return errCSIArity
	}
	return putr.SingleDesc("Report that the cursor is located at line %d, column %d", params[0], params[1])
}

func csiDoSU(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if len(params) != 1 {
		return errCSIArity
	}
	var dir, unit string
	switch final {
	case 0x53:
		dir, unit = "up", "line"
	case 0x54:
		dir, unit = "down", "line"
	case 0x41:
		dir, unit = "right", "column"
	case 0x40:
		dir, unit = "left", "column"
	default:
		return nil
	}
	return putr.SingleDesc("Scroll %s by %d %s%s", dir, params[0], unit, plural(params[0]))
}

var ctcMessages = []string{
	"Set a horizontal tab stop at the cursor position.",
	"Set a vertical tab stop at the current line.",
	"Clear the horizontal tab stop at the cursor position.",
	"Clear the vertical tab stop at the current line.",
	"Clear all horizontal tab stops in the current line.",
	"Clear all horizontal tab stops.",
	"Clear all vertical tab stops.",
}

func csiDoCTC(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	for _, p := range params {
		if int(p) < len(ctcMessages) {
			if err := putr.SingleDesc("%s", ctcMessages[p]); err != nil {
				return err
			}
		}
	}
	return nil
}

func csiDoECH(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	return putr.SingleDesc("Erase %d character%s, starting at the cursor.", params[0], plural(params[0]))
}

func csiDoDA(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if params[0] != 0 {
		return nil
	}
	return putr.SingleDesc("Request terminal identification.")
}

func csiDoVPA(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	return putr.SingleDesc("Move the cursor to line %d.", params[0])
}

func csiDoSM(final, priv byte, putr *putter.Putter, params []uint32) error {
	for _, p := range params {
		if priv == '?' {
			if err := handlePrivateMode(putr, p, final == 0x68); err != nil {
				return err
			}
			continue
		} else if priv != 0 {
			return nil
		}
		m, ok := modeForParam(p)
		if !ok {
			continue
		}
		arg := m.reset
		if final == 0x68 {
			arg = m.set
		}
		if err := putr.SingleDesc("%s (%s) -> %s", m.name, m.acro, arg); err != nil {
			return err
		}
	}
	return nil
}

var tbcMessages = []string{
	"Clear the horizontal tab stop at the cursor position.",
	"Clear the vertical tab stop at the current line.",
	"Clear all horizontal tab stops in the current line.",
	"Clear all horizontal tab stops.",
	"Clear all vertical tab stops.",
	"Clear all tab stops.",
}

func csiDoTBC(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if int(params[0]) < len(tbcMessages) {
		return putr.SingleDesc("%s", tbcMessages[params[0]])
	}
	return nil
}

var mcMessages = []string{
	"Initiate transfer to a primary auxiliary device.",
	"Initiate transfer from a primary auxiliary device.",
	"Initiate transfer to a secondary auxiliary device.",
	"Initiate transfer from a secondary auxiliary device.",
	"Stop relay to a primary auxiliary device.",
	"Start relay to a primary auxiliary device.",
	"Stop relay to a secondary auxiliary device.",
	"Start relay to a secondary auxiliary device.",
}

func csiDoMC(final, priv byte, putr *putter.Putter, params []uint32) error {
	p := params[0]
	if priv == '?' {
		var msg string
		switch p {
		case 1:
			msg = "(DEC) Print current line."
		case 4:
			msg = "(DEC) Turn off autoprint mode."
		case 5:
			msg = "(DEC) Turn on autoprint mode."
		}
		if msg == "" {
			return nil
		}
		return putr.SingleDesc("%s", msg)
	}
	if priv != 0 {
		return nil
	}
	if int(p) < len(mcMessages) {
		return putr.SingleDesc("%s", mcMessages[p])
	}
	return nil
}

func csiDoSGR(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv == '>' {
		var res string
		var arg uint32
		switch params[0] {
		case 1:
			res = "modifyCursorKeys"
		case 2:
			res = "modifyFunctionKeys"
		case 4:
			res = "modifyOtherKeys"
		}
		if len(params) > 1 && params[1] > 0 {
			arg = params[1]
		}
		if res != "" {
			if err := putr.SingleDesc("(Xterm) Set %s to %d.", res, arg); err != nil {
				return err
			}
		}
	}
	if priv != 0 {
		return nil
	}
	if len(params) >= 2 && (params[0] == 48 || params[0] == 38) {
		return putr.SingleDesc("%s", sgrIndexedColorDescription(params))
	}
	for _, p := range params {
		if msg := sgrParamDescription(p); msg != "" {
			if err := putr.SingleDesc("%s", msg); err != nil {
				return err
			}
		}
		if msg := sgrRxvtDefaultDescription(p); msg != "" {
			if err := putr.SingleDesc("%s", msg); err != nil {
				return err
			}
		}
	}
	return nil
}

var dsrMessages = []string{
	"Device reports ready.",
	"Device reports ready, send DSR request later.",
	"Device reports ready, will send DSR later.",
	"Device reports error, send DSR request later.",
	"Device reports error, will send DSR later.",
	"DSR requested.",
	"Request cursor position report.",
}

func csiDoDSR(final, priv byte, putr *putter.Putter, params []uint32) error {
	p := params[0]
	if priv == '>' {
		var res string
		switch p {
		case 1:
			res = "modifyCursorKeys"
		case 2:
			res = "modifyFunctionKeys"
		case 4:
			res = "modifyOtherKeys"
		}
		if res != "" {
			if err := putr.SingleDesc("(Xterm) Disable %s.", res); err != nil {
				return err
			}
		}
	}
	if priv != 0 {
		return nil
	}
	if int(p) < len(dsrMessages) {
		return putr.SingleDesc("%s", dsrMessages[p])
	}
	return nil
}

func csiDoSR(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv == '?' {
		var err error
		if final == 'r' {
			err = putr.SingleDesc("*** (Xterm) Restore saved settings for specified modes:")
		} else {
			err = putr.SingleDesc("*** (Xterm) Save current state of specified modes:")
		}
		if err != nil {
			return err
		}
		return csiDoSM('h', priv, putr, params)
	}
	if priv != 0 {
		return nil
	}
	if final != 'r' {
		return nil
	}
	switch len(params) {
	case 0:
		return putr.SingleDesc("(DEC) Set the scrolling region to full size.")
	case 2:
		return putr.SingleDesc("(DEC) Set the scrolling region to from line %d to line %d.", params[0], params[1])
	}
	return nil
}

func csiDoWM(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if len(params) == 0 {
		return nil
	}
	switch params[0] {
	case 1:
		return putr.SingleDesc("(dtterm) De-iconify window.")
	case 2:
		return putr.SingleDesc("(dtterm) Iconify window.")
	case 3:
		if len(params) >= 3 {
			return putr.SingleDesc("(dtterm) Move window to [%d, %d].", params[1], params[2])
		}
	case 4:
		if len(params) >= 3 {
			return putr.SingleDesc("(dtterm) Resize the window to height %d and width %d in pixels.", params[1], params[2])
		}
	case 5:
		return putr.SingleDesc("(dtterm) Raise the window to the front of the stacking order.")
	case 6:
		return putr.SingleDesc("(dtterm) Lower the xterm window to the bottom of the stacking order.")
	case 7:
		return putr.SingleDesc("(dtterm) Refresh the window.")
	case 8:
		if len(params) >= 3 {
			return putr.SingleDesc("(dtterm) Resize the text area to height %d and width %d in characters.", params[1], params[2])
		}
	case 9:
		if len(params) < 2 {
			return nil
		}
		if params[1] == 0 {
			return putr.SingleDesc("(Xterm) Restore maximized window.")
		} else if params[1] == 1 {
			return putr.SingleDesc("(Xterm) Maximize window.")
		}
	case 11:
		return putr.SingleDesc("(dtterm) Request report on the window state (iconified/not iconified).")
	case 13:
		return putr.SingleDesc("(dtterm) Request report on the window position.")
	case 14:
		return putr.SingleDesc("(dtterm) Request report on window size in pixels.")
	case 18:
		return putr.SingleDesc("(dtterm) Request report on text area size in characters.")
	case 19:
		return putr.SingleDesc("(Xterm) Request report on the whole screen size in characters.")
	case 20:
		return putr.SingleDesc("(dtterm) Request report of the window's icon label.")
	case 21:
		return putr.SingleDesc("(dtterm) Request report of the window's title.")
	default:
		if params[0] >= 24 {
			return putr.SingleDesc("(Xterm) Resize the window to %d lines.", params[0])
		}
	}
	return nil
}

func csiDoDECELR(final, priv byte, putr *putter.Putter, params []uint32) error {
	if len(params) != 2 {
		return errCSIArity
	}
	if priv != 0 {
		return nil
	}
	if params[0] > 2 || params[1] > 2 {
		return nil
	}
	switch params[0] {
	case 0:
		return putr.SingleDesc("Disable locator reports.")
	case 1:
		if err := putr.SingleDesc("Enable locator reports."); err != nil {
			return err
		}
	case 2:
		if err := putr.SingleDesc("Enable a single locator report."); err != nil {
			return err
		}
	}
	switch params[1] {
	case 0, 2:
		return putr.SingleDesc(" Report position in character cells.")
	case 1:
		return putr.SingleDesc(" Report position in pixels.")
	}
	return nil
}

var decsleMessages = []string{
	"Only respond to explicit locator report requests.",
	"Report button-down transitions.",
	"Do not report button-down transitions.",
	"Report button-up transitions.",
	"Do not report button-up transitions.",
}

func csiDoDECSLE(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	for _, p := range params {
		if int(p) < len(decsleMessages) {
			if err := putr.SingleDesc("%s", decsleMessages[p]); err != nil {
				return err
			}
		}
	}
	return nil
}

func csiDoDECRQLP(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if params[0] > 1 {
		return nil
	}
	return putr.SingleDesc("Request a single DECLRP locator report.")
}

var decMouseButtons = [4]string{"right", "middle", "left", "M4"}

func csiDoDECMouse(final, priv byte, putr *putter.Putter, params []uint32) error {
	if priv != 0 {
		return nil
	}
	if len(params) < 4 {
		return nil
	}
	var downs string
	if params[1] != 0 {
		downs = " [down:"
		first := true
		for bit := 0; bit != len(decMouseButtons); bit++ {
			if params[1]&(1<<uint(bit)) == 0 {
				continue
			}
			if !first {
				downs += "/"
			}
			first = false
			downs += decMouseButtons[bit]
		}
		downs += "]"
	}
	return putr.SingleDesc("(DEC) Mouse%s at [%d,%d].", downs, params[2], params[2])
}

// plural returns "" for exactly 1, "s" otherwise -- the reference's
// recurring (params[0] == 1 ? "" : "s") idiom, factored out once.
func plural(n uint32) string {
	if n == 1 {
		return ""
	}
	return "s"
}
