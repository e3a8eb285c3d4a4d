package teseq

// modeInfo describes one ANSI SM/RM mode: its acronym, long name, and the
// words used to describe the reset (RM) and set (SM) states.
type modeInfo struct {
	acro  string
	name  string
	reset string
	set   string
}

// modeTable is indexed by the SM/RM parameter value. Grounded verbatim on
// original_source/src/modes.h's modes[] array.
var modeTable = [23]modeInfo{
	1:  {"GATM", "GUARDED AREA TRANSFER MODE", "GUARD", "ALL"},
	2:  {"KAM", "KEYBOARD ACTION MODE", "ENABLED", "DISABLED"},
	3:  {"CRM", "CONTROL REPRESENTATION MODE", "CONTROL", "GRAPHIC"},
	4:  {"IRM", "INSERTION REPLACEMENT MODE", "REPLACE", "INSERT"},
	5:  {"SRTM", "STATUS REPORT TRANSFER MODE", "NORMAL", "DIAGNOSTIC"},
	6:  {"ERM", "ERASURE MODE", "PROTECT", "ALL"},
	7:  {"VEM", "LINE EDITING MODE", "FOLLOWING", "PRECEDING"},
	8:  {"BDSM", "BI-DIRECTIONAL SUPPORT MODE", "EXPLICIT", "IMPLICIT"},
	9:  {"DCSM", "DEVICE COMPONENT SELECT MODE", "PRESENTATION", "DATA"},
	10: {"HEM", "CHARACTER EDITING MODE", "FOLLOWING", "PRECEDING"},
	11: {"PUM", "POSITIONING UNIT MODE", "CHARACTER", "SIZE"},
	12: {"SRM", "SEND/RECEIVE MODE", "MONITOR", "SIMULTANEOUS"},
	13: {"FEAM", "FORMAT EFFECTOR ACTION MODE", "EXECUTE", "STORE"},
	14: {"FETM", "FORMAT EFFECTOR TRANSFER MODE", "INSERT", "EXCLUDE"},
	15: {"MATM", "MULTIPLE AREA TRANSFER MODE", "SINGLE", "MULTIPLE"},
	16: {"TTM", "TRANSFER TERMINATION MODE", "CURSOR", "ALL"},
	17: {"SATM", "SELECTED AREA TRANSFER MODE", "SELECT", "ALL"},
	18: {"TSM", "TABULATION STOP MODE", "MULTIPLE", "SINGLE"},
	21: {"GRCM", "GRAPHIC RENDITION COMBINATION GRCM", "REPLACING", "CUMULATIVE"},
	22: {"ZDM", "ZERO DEFAULT MODE", "ZERO", "DEFAULT"},
}

func modeForParam(n uint32) (modeInfo, bool) {
	if n >= uint32(len(modeTable)) {
		return modeInfo{}, false
	}
	m := modeTable[n]
	return m, m.acro != ""
}
