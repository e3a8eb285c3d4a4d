package teseq

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// isoIRNames maps an ISO-IR registry number to the character-set name
// commonly used for it. Grounded verbatim on original_source/src/teseq.c's
// iso_ir_names[]; absent entries had no name on file and fall back to
// "ISO-IR-<n>" in isoIRName.
var isoIRNames = map[int]string{
	2: "ISO_646.irv:1973", 4: "ISO646-GB", 6: "US-ASCII",
	10: "ISO646-SE", 11: "ISO646-SE2", 13: "JIS_C6220-1969-JP",
	14: "ISO646-JP", 15: "ISO646-IT", 16: "ISO646-PT", 17: "ISO646-ES",
	18: "GREEK7-OLD", 19: "LATIN-GREEK", 21: "ISO646-DE", 25: "ISO646-FR1",
	27: "LATIN-GREEK-1", 31: "ISO_5428:1976", 37: "ISO_5427",
	38: "DIN_31624", 39: "ISO_6438", 42: "JIS_C6226-1978",
	47: "ISO-IR-47", 49: "INIS", 50: "INIS-8", 51: "INIS-CYRILLIC",
	53: "ISO_5426", 54: "ISO_5427:1981", 55: "ISO_5428",
	57: "ISO646-CN", 58: "GB_2312-80", 59: "CODAR-U",
	60: "ISO646-NO", 61: "ISO646-NO2", 68: "APL", 69: "ISO646-FR",
	70: "CCITT-VIDEOTEX", 71: "CCITT-MOSAIC-2",
	84: "ISO646-PT2", 85: "ISO646-ES2", 86: "ISO646-HU", 88: "GREEK7",
	89: "ARABIC7", 90: "ISO_6937-2", 91: "ISO646-JP-OCR-A",
	92: "ISO646-JP-OCR-B", 93: "ISO646-JP-OCR-B-EXT",
	94: "ISO646-JP-OCR-HAND", 95: "ISO646-JP-OCR-HAND-EXT",
	96: "JIS_C6229-1984-OCR-HAND", 98: "ISO_2033", 99: "ANSI_X3.110",
	100: "ISO-8859-1", 101: "ISO-8859-2", 102: "ISO646-T.61", 103: "T.61",
	109: "ISO-8859-3", 110: "ISO-8859-4", 111: "ECMA-CYRILLIC",
	121: "ISO646-CA", 122: "ISO646-CA2", 123: "CSA_Z243.4-1985-EXT",
	126: "ISO-8859-7:1987", 127: "ISO-8859-6",
	128: "T.101-2", 129: "T.101-3",
	137: "CCITT-MOSAIC-1", 138: "ISO-8859-8:1988", 139: "CSN_369103",
	141: "ISO646-YU", 142: "BSI_IST-2", 143: "IEC_P27-1",
	144: "ISO-8859-5", 146: "JUS_003", 147: "JUS_004",
	148: "ISO-8859-9", 149: "KSC_5601", 150: "GREEK-CCITT",
	151: "ISO646-CU", 152: "ISO_6937-2-RESIDUAL", 153: "GOST_19768-74",
	154: "ISO-IR-154", 155: "ISO_10367-BOX", 156: "ISO_6937:1992",
	157: "ISO-8859-10", 158: "ISO-IR-158", 159: "JIS_X0212-1990",
	164: "HEBREW-CCITT", 165: "CHINESE-CCITT", 166: "TIS-620",
	167: "ARABIC-BULL", 168: "JIS_X0208-1990", 169: "BLISSYMBOL",
	170: "ISO646-INV", 171: "CNS11643-1:1986", 172: "CNS11643-2:1986",
	173: "CCITT-MOSAIC-3", 179: "ISO-8859-13", 180: "TCVN5712:1993",
	181: "ISO-IR-181", 182: "LATIN-WELSH", 183: "CNS11643-3:1992",
	184: "CNS11643-4:1992", 185: "CNS11643-5:1992", 186: "CNS11643-6:1992",
	187: "CNS11643-7:1992", 197: "ISO-IR-197", 198: "ISO-8859-8",
	199: "ISO-8859-14", 200: "CYRILLIC-URALIC", 201: "CYRILLIC-VOLGAIC",
	202: "KPS_9566-97", 203: "ISO-8859-15", 204: "ISO-8859-1-EURO",
	205: "ISO-8859-4-EURO", 206: "ISO-8859-13-EURO", 207: "ISO646-IE",
	208: "IS_434:1997", 209: "ISO-IR-209",
	226: "ISO-8859-16", 227: "ISO-8859-7", 228: "JIS_X0213-1:2000",
	229: "JIS_X0213-2:2000", 230: "TDS-565", 231: "ANSI_Z39.47",
	232: "TDS-616", 233: "JIS_X0213-1:2004", 234: "SI1311:2002",
}

// isoIRControlNames maps an ISO-IR registry number to a control
// character set's name, used by the C0/C1-designate tables (5 and 6).
// Grounded verbatim on original_source/src/teseq.c's iso_ir_control_names[].
var isoIRControlNames = map[int]string{
	1: "ISO 646", 7: "NATS", 26: "ISO-IR-26", 36: "ISO-IR-36",
	40: "DIN_31626", 48: "INIS", 56: "VIDEOTEX-GB",
	73: "VIDEOTEX-CCITT", 74: "JIS_C6225-1979", 77: "ISO_6429-1983",
	104: "ISO_4873", 105: "ISO_4873", 106: "T.61", 107: "T.61",
	124: "ISO_6630-1985", 130: "ASMO_662-1985",
	132: "T.101-1", 133: "T.101-1", 134: "T.101-2", 135: "T.101-3",
	136: "T.101-3", 140: "CSN_369102",
}

// isoIRName resolves a (possibly fractional, e.g. 8.1 for NATS-SEFI) ISO-IR
// registry number to its name, falling back to "ISO-IR-<n>" when unknown.
func isoIRName(id float64) string {
	switch id {
	case 8.1:
		return "NATS-SEFI"
	case 8.2:
		return "NATS-SEFI-ADD"
	case 9.1:
		return "NATS-DANO"
	case 9.2:
		return "NATS-DANO-ADD"
	}
	n := int(id)
	if name, ok := isoIRNames[n]; ok {
		return name
	}
	return fmt.Sprintf("ISO-IR-%d", n)
}

// isoIRTable1 covers 94-character sets assigned 1988-10 or before, for the
// 3-byte escape ESC 0x28..0x2B 0x40+XX. Indexed from final byte 0x40.
var isoIRTable1 = []float64{
	2, 4, 6, 8.1, 8.2, 9.1, 9.2, 10, 11, 13, 14, 21, 16, 39, 37, 38,
	53, 54, 25, 55, 57, 27, 47, 49, 31, 15, 17, 18, 19, 50, 51, 59,
	60, 61, 70, 71, 173, 68, 69, 84, 85, 86, 88, 89, 90, 91, 92, 93,
	94, 95, 96, 98, 99, 102, 103, 121, 122, 137, 141, 146, 128, 147,
}

// isoIRTable2 covers 94-character sets assigned 1988-11 or later, for the
// 4-byte escape ESC 0x28..0x2B 0x21 0x40+XX.
var isoIRTable2 = []float64{150, 151, 170, 207, 230, 231, 232}

// isoIRTable3 covers 96-character sets, for ESC 0x2D..0x2F 0x40+XX. -1
// marks an unused slot.
var isoIRTable3 = []int{
	111, 100, 101, 109, 110, 123, 126, 127, 138, 139, 142, 143, 144, 148, 152, 153,
	154, 155, 156, 164, 166, 167, 157, -1, 158, 179, 180, 181, 182, 197, 198, 199,
	200, 201, 203, 204, 205, 206, 226, 208, 209, 227, 234, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 129,
}

// isoIRTable4 covers multi-byte character sets, for the escapes
// ESC 0x24 [0x28] 0x40+XX and ESC 0x24 0x29..0x2B 0x40+XX.
var isoIRTable4 = []float64{
	42, 58, 168, 149, 159, 165, 169, 171, 172, 183, 184, 185, 186, 187, 202, 228,
	229, 233,
}

// isoIRTable5 covers C0 control character sets, for ESC 0x21 0x40+XX.
var isoIRTable5 = []int{1, 7, 48, 26, 36, 106, 74, 104, 130, 132, 134, 135, 140}

// isoIRTable6 covers C1 control character sets, for ESC 0x22 0x40+XX.
var isoIRTable6 = []int{56, 73, 124, 77, 133, 40, 136, 105, 107}

func tableLookupFloat(table []float64, final byte) (string, bool) {
	i := int(final) - 0x40
	if i < 0 || i >= len(table) {
		return "", false
	}
	return isoIRName(table[i]), true
}

func tableLookupInt(table []int, final byte, names map[int]string) (string, bool) {
	i := int(final) - 0x40
	if i < 0 || i >= len(table) || table[i] < 0 {
		return "", false
	}
	name, ok := names[table[i]]
	return name, ok
}

func isoIRTable1Name(final byte) (string, bool) { return tableLookupFloat(isoIRTable1, final) }
func isoIRTable2Name(final byte) (string, bool) { return tableLookupFloat(isoIRTable2, final) }

func isoIRTable3Name(final byte) (string, bool) {
	i := int(final) - 0x40
	if i < 0 || i >= len(isoIRTable3) || isoIRTable3[i] < 0 {
		return "", false
	}
	return isoIRName(float64(isoIRTable3[i])), true
}

func isoIRTable4Name(final byte) (string, bool) {
	i := int(final) - 0x40
	if i < 0 || i >= len(isoIRTable4) {
		return "", false
	}
	return isoIRName(isoIRTable4[i]), true
}

func isoIRC0Name(final byte) (string, bool) { return tableLookupInt(isoIRTable5, final, isoIRControlNames) }
func isoIRC1Name(final byte) (string, bool) { return tableLookupInt(isoIRTable6, final, isoIRControlNames) }

// ControlSetDesignation describes one ESC 0x21/0x22-FINAL control-set
// designation, grounded on teseq.c's print_cxd_info.
type ControlSetDesignation struct {
	Label string // e.g. "CZD" or "C1D"
	Desc  string // e.g. "Designate C0 Control Set of ISO 646." ("" if unknown)
}

// DescribeControlSetDesignation handles ESC 0x21 FINAL (C0) and
// ESC 0x22 FINAL (C1) control-set designation sequences.
func DescribeControlSetDesignation(intermediate, final byte) ControlSetDesignation {
	if intermediate == 0x21 {
		name, ok := isoIRC0Name(final)
		d := ControlSetDesignation{Label: "CZD"}
		if ok {
			d.Desc = fmt.Sprintf("Designate C0 Control Set of %s.", name)
		}
		return d
	}
	name, ok := isoIRC1Name(final)
	d := ControlSetDesignation{Label: "C1D"}
	if ok {
		d.Desc = fmt.Sprintf("Designate C1 Control Set of %s.", name)
	}
	return d
}

// GraphicSetDesignation describes one graphic character-set designation
// sequence, grounded on teseq.c's print_gxd_info/print_gxdm_info.
type GraphicSetDesignation struct {
	Label string
	Desc  string
}

var designationDigits = "Z123"

// columnOf mirrors teseq.c's GET_COLUMN macro: the high nibble of a byte.
func columnOf(b byte) byte { return (b >> 4) & 0x0F }

// DescribeGraphicDesignation handles ESC 0x28..0x2F [I1] FINAL, the
// 94-/96-character single-byte graphic set designations.
func DescribeGraphicDesignation(intermediate, i1, final byte) (GraphicSetDesignation, bool) {
	var set, designate int
	switch {
	case intermediate >= 0x28 && intermediate <= 0x2b:
		set, designate = 4, int(intermediate-0x28)
	case intermediate >= 0x2d && intermediate <= 0x2f:
		set, designate = 6, int(intermediate-0x2c)
	default:
		return GraphicSetDesignation{}, false
	}

	d := GraphicSetDesignation{
		Label: fmt.Sprintf("G%cD%d: G%d-DESIGNATE 9%d-SET", designationDigits[designate], set, designate, set),
	}

	designator := string(final)
	if i1 != 0 {
		designator = string(i1) + string(final)
	}

	var explanation string
	if columnOf(final) == 3 {
		explanation = " (private)"
	} else {
		var name string
		var ok bool
		if set == 4 {
			if i1 == 0 {
				name, ok = isoIRTable1Name(final)
			} else if i1 == 0x21 {
				name, ok = isoIRTable2Name(final)
			}
		} else if i1 == 0 {
			name, ok = isoIRTable3Name(final)
		}
		if ok {
			explanation = fmt.Sprintf(" (%s)", name)
		}
	}

	d.Desc = fmt.Sprintf("Designate 9%d-character set %s%s to G%d.", set, designator, explanation, designate)
	return d, true
}

// DescribeMultibyteDesignation handles ESC 0x24 [I1] FINAL, the multibyte
// graphic character-set designations.
func DescribeMultibyteDesignation(i1, final byte) (GraphicSetDesignation, bool) {
	var set, designate int
	switch {
	case i1 == 0 && (final == 0x40 || final == 0x41 || final == 0x42):
		set, designate = 4, 0
	case i1 >= 0x28 && i1 <= 0x2b:
		set, designate = 4, int(i1-0x28)
	case i1 >= 0x2d && i1 <= 0x2f:
		set, designate = 6, int(i1-0x2c)
	default:
		return GraphicSetDesignation{}, false
	}

	d := GraphicSetDesignation{
		Label: fmt.Sprintf("G%cDM%d: G%d-DESIGNATE MULTIBYTE 9%d-SET", designationDigits[designate], set, designate, set),
	}

	var explanation string
	if columnOf(final) == 3 {
		explanation = " (private)"
	} else if set == 4 {
		if name, ok := isoIRTable4Name(final); ok {
			explanation = fmt.Sprintf(" (%s)", name)
		}
	}

	d.Desc = fmt.Sprintf("Designate multibyte 9%d-character set %c%s to G%d.", set, final, explanation, designate)
	return d, true
}

// ianaEncodingFor cross-checks a resolved ISO-IR name against the IANA
// charset registry; ISO-IR remains the authoritative name (the reference
// decoder never consults IANA), this is enrichment only, used when a
// caller wants to annotate a designation with a known Go encoding.
func ianaEncodingFor(isoIRName string) (encoding.Encoding, bool) {
	enc, err := ianaindex.IANA.Encoding(isoIRName)
	if err != nil || enc == nil {
		return nil, false
	}
	return enc, true
}
