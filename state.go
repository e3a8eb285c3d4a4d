package teseq

// processorState names the three top-level recognizer states, mirroring
// original_source/src/teseq.c's enum processor_state.
type processorState int

const (
	stInit processorState = iota
	stText
	stCtrl
)

// Control-byte constants, grounded on teseq.c's CONTROL/UNCONTROL macros.
const (
	cESC byte = 0x1B
	cDEL byte = 0x7F
)

// isControl reports whether c is a C0 control byte (column 0 or 1).
func isControl(c byte) bool {
	return columnOf(c) <= 1
}

// isNormalText mirrors teseq.c's is_normal_text macro: printable ASCII,
// excluding DEL.
func isNormalText(c byte) bool {
	return c >= 0x20 && c < 0x7F
}

// isASCIIDigit mirrors teseq.c's is_ascii_digit macro.
func isASCIIDigit(c byte) bool {
	return c >= 0x30 && c <= 0x39
}

// isNFIntermediate mirrors IS_nF_INTERMEDIATE_CHAR: column 2 (0x20-0x2F).
func isNFIntermediate(c byte) bool {
	return columnOf(c) == 2
}

// isNFFinal mirrors IS_nF_FINAL_CHAR: 0x30 through 0x7E.
func isNFFinal(c byte) bool {
	return c >= 0x30 && c < 0x7F
}

// isCSIIntermediate mirrors IS_CSI_INTERMEDIATE_CHAR: column 2.
func isCSIIntermediate(c byte) bool {
	return columnOf(c) == 2
}

// isCSIFinal mirrors IS_CSI_FINAL_CHAR: columns 4 through 7, excluding
// DEL (0x40 through 0x7E).
func isCSIFinal(c byte) bool {
	col := columnOf(c)
	return col >= 4 && col <= 7 && c != 0x7F
}

// isPrivateParamChar mirrors IS_PRIVATE_PARAM_CHAR. acceptColon controls
// the reference's deliberate non-standard acceptance of 0x3A alongside
// the standard 0x3C-0x3F range (Config.AcceptColonAsPrivateMarker).
func isPrivateParamChar(c byte, acceptColon bool) bool {
	return (c >= 0x3C && c <= 0x3F) || (acceptColon && c == 0x3A)
}

// initState opens the run appropriate to the first byte of a fresh unit
// of work, mirroring teseq.c's init_state.
func (pr *Processor) initState(c byte) error {
	pr.printDot = true
	if c != '\n' && !isNormalText(c) {
		pr.st = stCtrl
		return nil
	}
	pr.st = stText
	return pr.putr.Start("text", "|", "|-", "-|")
}

// finishState closes whatever run is currently open and returns to
// stInit, mirroring teseq.c's finish_state.
func (pr *Processor) finishState() error {
	var err error
	switch pr.st {
	case stText:
		err = pr.putr.Finish("|")
	case stCtrl:
		err = pr.putr.Finish("")
	case stInit:
		// Nothing open.
	}
	pr.st = stInit
	return err
}

// printControl appends one control byte's name to the open control run,
// opening the run's "." prefix lazily on first use. Mirrors
// teseq.c's print_control.
func (pr *Processor) printControl(c byte) error {
	if pr.printDot {
		pr.printDot = false
		if err := pr.putr.Start("ctrl", ".", "", "."); err != nil {
			return err
		}
	}
	if isControl(c) || c == cDEL {
		if err := pr.putr.Printf(" %s", c0Name(c, pr.cfg.CaretNames)); err != nil {
			return err
		}
	} else if err := pr.putr.Printf(" x%02X", c); err != nil {
		return err
	}
	pr.st = stCtrl
	return nil
}
