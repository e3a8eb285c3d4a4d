package teseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestISOIRNameKnownAndFallback(t *testing.T) {
	assert.Equal(t, "US-ASCII", isoIRName(6))
	assert.Equal(t, "NATS-SEFI", isoIRName(8.1))
	assert.Equal(t, "NATS-DANO-ADD", isoIRName(9.2))
	assert.Equal(t, "ISO-IR-3", isoIRName(3))
}

func TestISOIRTable1NameASCII(t *testing.T) {
	// final 0x40 is the first entry (registry 2, ISO_646.irv:1973).
	name, ok := isoIRTable1Name(0x40)
	assert.True(t, ok)
	assert.Equal(t, "ISO_646.irv:1973", name)

	// final 0x42 (third entry) is registry 6, US-ASCII.
	name, ok = isoIRTable1Name(0x42)
	assert.True(t, ok)
	assert.Equal(t, "US-ASCII", name)
}

func TestISOIRTable3SkipsUnusedSlots(t *testing.T) {
	_, ok := isoIRTable3Name(0x40 + 23)
	assert.False(t, ok)
}

func TestDescribeControlSetDesignationC0(t *testing.T) {
	d := DescribeControlSetDesignation(0x21, 0x40)
	assert.Equal(t, "CZD", d.Label)
	assert.Equal(t, "Designate C0 Control Set of ISO 646.", d.Desc)
}

func TestDescribeControlSetDesignationC1(t *testing.T) {
	d := DescribeControlSetDesignation(0x22, 0x40+1)
	assert.Equal(t, "C1D", d.Label)
	assert.Contains(t, d.Desc, "VIDEOTEX-CCITT")
}

func TestDescribeGraphicDesignationG0Ascii(t *testing.T) {
	d, ok := DescribeGraphicDesignation(0x28, 0, 0x42)
	assert.True(t, ok)
	assert.Equal(t, "GZD4: G0-DESIGNATE 94-SET", d.Label)
	assert.Equal(t, "Designate 94-character set B (US-ASCII) to G0.", d.Desc)
}

func TestDescribeGraphicDesignationPrivate(t *testing.T) {
	// Column 3 (0x30-0x3F) is reserved for private use.
	d, ok := DescribeGraphicDesignation(0x28, 0, 0x33)
	assert.True(t, ok)
	assert.Contains(t, d.Desc, "(private)")
}

func TestDescribeGraphicDesignationUnknownIntermediate(t *testing.T) {
	_, ok := DescribeGraphicDesignation(0x50, 0, 0x42)
	assert.False(t, ok)
}

func TestDescribeMultibyteDesignationG0(t *testing.T) {
	d, ok := DescribeMultibyteDesignation(0, 0x40)
	assert.True(t, ok)
	assert.Equal(t, "GZDM4: G0-DESIGNATE MULTIBYTE 94-SET", d.Label)
}

func TestIANAEncodingForKnownAndUnknown(t *testing.T) {
	_, ok := ianaEncodingFor("ISO-8859-1")
	assert.True(t, ok)

	_, ok = ianaEncodingFor("ISO-IR-47")
	assert.False(t, ok)
}
