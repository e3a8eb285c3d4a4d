package teseq

import "strconv"

// sgrParamDescriptions maps an SGR parameter value to its English
// description. Grounded verbatim on original_source/src/sgr.h's
// sgr_param_descriptions[]; empty entries are reserved/unpublished slots
// in the original ECMA-48 allocation.
var sgrParamDescriptions = [66]string{
	0:  "Clear graphic rendition to defaults.",
	1:  "Set bold text.",
	2:  "Set dim text.",
	3:  "Set italicized text.",
	4:  "Set underlined text.",
	5:  "Set slowly blinking text.",
	6:  "Set rapidly blinking text.",
	7:  "Set negative text image.",
	8:  "Set hidden text.",
	9:  "Set strike-out text.",
	10: "Set default font.",
	11: "Set first alternative font.",
	12: "Set second alternative font.",
	13: "Set third alternative font.",
	14: "Set fourth alternative font.",
	15: "Set fifth alternative font.",
	16: "Set sixth alternative font.",
	17: "Set seventh alternative font.",
	18: "Set eighth alternative font.",
	19: "Set ninth alternative font.",
	20: "Set Fraktur (Gothic) font.",
	21: "Set double-underlined text.",
	22: "Clear bold or dim text.",
	23: "Clear italicized or fraktur text.",
	24: "Clear underlining.",
	25: "Clear blinking.",
	// 26 reserved for T.61, never published.
	27: "Set positive text image.",
	28: "Set visible text.",
	29: "Clear strike-out text.",
	30: "Set foreground color black.",
	31: "Set foreground color red.",
	32: "Set foreground color green.",
	33: "Set foreground color yellow.",
	34: "Set foreground color blue.",
	35: "Set foreground color magenta.",
	36: "Set foreground color cyan.",
	37: "Set foreground color white.",
	// 38 handled specially (38;5;N indexed color, see
	// sgrIndexedColorDescription below).
	39: "Set foreground color default.",
	40: "Set background color black.",
	41: "Set background color red.",
	42: "Set background color green.",
	43: "Set background color yellow.",
	44: "Set background color blue.",
	45: "Set background color magenta.",
	46: "Set background color cyan.",
	47: "Set background color white.",
	// 48 handled specially (indexed/RGB color, see t416 below).
	49: "Set background color default.",
	51: "Set framed text.",
	52: "Set encircled text.",
	53: "Set overlined text.",
	54: "Clear framed or encircled text.",
	55: "Clear overlined text.",
	60: "Set ideogram underline",
	61: "Set ideogram double underline",
	62: "Set ideogram overline",
	63: "Set ideogram double overline",
	64: "Set ideogram stress marking",
	65: "Clear ideographic underlines, overlines, or stress marks.",
}

// sgrBrightDescriptions covers the non-standard Xterm "bright"
// foreground/background range 90-107.
var sgrBrightDescriptions = [18]string{
	"(Xterm) Set foreground color gray.",
	"(Xterm) Set foreground color bright red.",
	"(Xterm) Set foreground color bright green.",
	"(Xterm) Set foreground color bright yellow.",
	"(Xterm) Set foreground color bright blue.",
	"(Xterm) Set foreground color bright magenta.",
	"(Xterm) Set foreground color bright cyan.",
	"(Xterm) Set foreground color bright white.",
	"",
	"",
	"(Xterm) Set background color gray.",
	"(Xterm) Set background color bright red.",
	"(Xterm) Set background color bright green.",
	"(Xterm) Set background color bright yellow.",
	"(Xterm) Set background color bright blue.",
	"(Xterm) Set background color bright magenta.",
	"(Xterm) Set background color bright cyan.",
	"(Xterm) Set background color bright white.",
}

// sgrParamDescription resolves one SGR parameter value to its
// description, or "" if it has none (reserved/unknown slot).
func sgrParamDescription(param uint32) string {
	switch {
	case param >= 90 && param <= 107:
		return sgrBrightDescriptions[param-90]
	case int(param) < len(sgrParamDescriptions):
		return sgrParamDescriptions[param]
	default:
		return ""
	}
}

// sgrRxvtDefaultDescription returns the extra (Rxvt) line param 100 emits
// in addition to its ordinary bright-range description, or "" otherwise.
func sgrRxvtDefaultDescription(param uint32) string {
	if param == 100 {
		return "(Rxvt) Set foreground and background color to default."
	}
	return ""
}

// sgrIndexedColorDescription implements the SGR 38/48 extended color forms
// (ITU-T T.416-style "38;5;N" indexed color). params is the full CSI
// parameter vector including the leading 38 or 48; any other form,
// including 38;2;R;G;B, is described as "(unknown)".
func sgrIndexedColorDescription(params []uint32) string {
	foreBack := "foreground"
	if params[0] == 48 {
		foreBack = "background"
	}
	if len(params) == 3 && params[1] == 5 {
		return "Set " + foreBack + " color to index " + strconv.FormatUint(uint64(params[2]), 10) + "."
	}
	return "Set " + foreBack + " color (unknown)."
}
