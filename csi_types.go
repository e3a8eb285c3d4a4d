package teseq

import "github.com/flw-cn/teseq/internal/putter"

// csiFuncType tags a CSI handler's parameter arity, mirroring
// original_source/src/csi.h's enum csi_func_type.
type csiFuncType int

const (
	csiFuncNone csiFuncType = iota
	csiFuncPN               // exactly one numeric parameter (Pn)
	csiFuncPNPN             // exactly two numeric parameters
	csiFuncPNAny            // zero or more numeric parameters
	csiFuncPS               // exactly one selective parameter (Ps)
	csiFuncPSPS             // exactly two selective parameters
	csiFuncPSAny            // zero or more selective parameters
)

// csiDefaultNone marks "no default value" for a handler's default0/default1,
// mirroring CSI_DEFAULT_NONE.
const csiDefaultNone = -1

// csiHandlerFunc renders the description lines for one fully-parsed CSI
// sequence. final is the sequence's final byte, priv is the private-marker
// byte (0 if none), params holds every numeric parameter already defaulted.
type csiHandlerFunc func(final, priv byte, putr *putter.Putter, params []uint32) error

// csiHandler is one entry of the CSI dispatch tables, mirroring
// original_source/src/csi.h's struct csi_handler.
type csiHandler struct {
	acro     string
	label    string
	typ      csiFuncType
	fn       csiHandlerFunc
	default0 int
	default1 int
}

// usesDefault1 reports whether a handler distinguishes the very first
// parameter's default from the rest, mirroring CSI_USE_DEFAULT1.
func (h *csiHandler) usesDefault1() bool {
	return h.typ == csiFuncPNPN || h.typ == csiFuncPSPS
}

// defaultFor returns the default value to substitute for an omitted
// parameter at position n (0-based), mirroring CSI_GET_DEFAULT.
func (h *csiHandler) defaultFor(n int) int {
	if n == 1 && h.usesDefault1() {
		return h.default1
	}
	return h.default0
}

// hasLabel reports whether this table slot carries an acronym/label pair
// to echo, independent of whether it also has a description function — the
// reference prints EL/EA-style labels for sequences it does not describe.
func (h *csiHandler) hasLabel() bool {
	return h != nil && h.acro != ""
}

// hasDescription reports whether this slot has a description function.
func (h *csiHandler) hasDescription() bool {
	return h != nil && h.fn != nil
}
