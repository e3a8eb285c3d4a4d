package teseq

import (
	"errors"
	"io"

	"github.com/flw-cn/teseq/internal/inputbuf"
)

// errCSIMalformed signals that processCSISequence was invoked without a
// '[' immediately available, which would indicate a bug in the caller's
// use of readCSISequence rather than malformed input.
var errCSIMalformed = errors.New("teseq: processCSISequence called without a pending '['")

// csiParamFirstChar/csiParameter/csiIntermediate name the sub-states of
// the CSI look-ahead scan, mirroring teseq.c's anonymous enum inside
// read_csi_sequence.
type csiScanState int

const (
	csiParamFirstChar csiScanState = iota
	csiParameter
	csiIntermediate
)

// readCSISequence determines whether the bytes following "Esc [" (already
// consumed by the caller) form a structurally valid CSI sequence, and if
// so returns the handler descriptor for it. It assumes the caller already
// opened a savepoint on ib; on success it rewinds ib back to the point
// right after "Esc" so the caller (or processCSISequence) can re-scan
// the sequence from scratch. On failure it returns (nil, nil) without
// touching ib, leaving rewind-or-commit to the caller.
//
// Mirrors teseq.c's read_csi_sequence.
func readCSISequence(ib *inputbuf.InputBuf, acceptColon bool) (*csiHandler, error) {
	state := csiParamFirstChar
	private := byte(0)
	var interm []byte

	for {
		c, err := ib.Get()
		if err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
		col := columnOf(c)

		switch state {
		case csiParamFirstChar:
			state = csiParameter
			if isPrivateParamChar(c, acceptColon) {
				private = c
			}
			fallthrough
		case csiParameter:
			if isCSIIntermediate(c) {
				state = csiIntermediate
			} else if col == 3 {
				if private == 0 && isPrivateParamChar(c, acceptColon) {
					return nil, nil
				}
				continue
			}
			fallthrough
		case csiIntermediate:
			if isCSIFinal(c) {
				ib.Rewind()
				return getCSIHandler(interm, c), nil
			}
			if !isCSIIntermediate(c) {
				return nil, nil
			}
			interm = append(interm, c)
		}
	}
}

// processCSISequence re-scans a CSI sequence already determined valid by
// readCSISequence, echoing its literal bytes, tokenizing its parameters,
// printing its label, and (if configured) invoking its description
// function. Mirrors teseq.c's process_csi_sequence.
func (pr *Processor) processCSISequence(h *csiHandler) error {
	const maxParams = 255
	const maxParamValue = ^uint32(0)

	echo := pr.cfg.EchoEscapes
	var private byte
	var last byte
	var params []uint32
	var curParam uint32
	var final byte

	if echo {
		if err := pr.putr.Start("esc", ":", "", ": "); err != nil {
			return err
		}
		if err := pr.putr.Puts(" Esc"); err != nil {
			return err
		}
	}

	c, ok, err := pr.getByte()
	if err != nil {
		return err
	}
	if !ok || c != '[' {
		return errCSIMalformed
	}
	if echo {
		if err := pr.putr.Puts(" ["); err != nil {
			return err
		}
	}

	c, ok, err = pr.getByte()
	if err != nil {
		return err
	}
	if ok && !isCSIFinal(c) && isPrivateParamChar(c, pr.cfg.AcceptColonAsPrivateMarker) {
		private = c
	}

	for {
		if isASCIIDigit(c) {
			if isASCIIDigit(last) {
				d := uint32(c - '0')
				if curParam > (maxParamValue-d)/10 {
					curParam = maxParamValue
				} else {
					curParam = curParam*10 + d
				}
			} else {
				curParam = uint32(c - '0')
			}
		} else {
			if isASCIIDigit(last) {
				if len(params) < maxParams {
					params = append(params, curParam)
				}
				if echo {
					if err := pr.putr.Printf(" %d", curParam); err != nil {
						return err
					}
				}
			} else if (last != 0 || private == 0) && !isCSIIntermediate(last) && len(params) < maxParams {
				if d := h.defaultFor(len(params)); d != csiDefaultNone {
					params = append(params, uint32(d))
				}
			}
			if echo {
				if err := pr.printEscChar(c); err != nil {
					return err
				}
			}
		}
		last = c
		if isCSIFinal(c) {
			final = c
			break
		}
		c, ok, err = pr.getByte()
		if err != nil {
			return err
		}
		if !ok {
			final = c
			break
		}
	}

	if echo {
		if err := pr.putr.Finish(""); err != nil {
			return err
		}
	}

	if h.hasLabel() {
		privmsg := ""
		if private != 0 {
			privmsg = " (private params)"
		}
		if err := pr.putr.SingleLabel("%s: %s%s", h.acro, h.label, privmsg); err != nil {
			return err
		}
	}

	if pr.cfg.Describe && h.hasDescription() {
		// Mirrors teseq.c's init_csi_params: substitute default0 for a
		// wholly-omitted parameter, then default1 for a still-missing
		// second parameter of a two-parameter family.
		if len(params) == 0 && h.default0 != csiDefaultNone {
			params = append(params, uint32(h.default0))
		}
		if len(params) == 1 && h.usesDefault1() {
			params = append(params, uint32(h.default1))
		}

		wrongArity := (h.typ == csiFuncPN || h.typ == csiFuncPS) && len(params) != 1
		wrongArity = wrongArity || ((h.typ == csiFuncPNPN || h.typ == csiFuncPSPS) && len(params) != 2)
		if !wrongArity {
			if err := h.fn(final, private, pr.putr, params); err != nil {
				return err
			}
		}
	}

	return nil
}
