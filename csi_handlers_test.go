package teseq

import (
	"strings"
	"testing"

	"github.com/cloudwego/gopkg/bufiox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flw-cn/teseq/internal/putter"
)

func newTestPutter() (*putter.Putter, *strings.Builder) {
	var sb strings.Builder
	p := putter.New(bufiox.NewDefaultWriter(&sb), 0)
	return p, &sb
}

func TestGetCSIHandlerStandardTable(t *testing.T) {
	h := getCSIHandler(nil, 0x41) // CUU
	require.NotNil(t, h)
	assert.Equal(t, "CUU", h.acro)
}

func TestGetCSIHandlerSpaceIntermediate(t *testing.T) {
	h := getCSIHandler([]byte{0x20}, 0x40) // SL
	require.NotNil(t, h)
	assert.Equal(t, "SL", h.acro)
}

func TestGetCSIHandlerStandaloneSR(t *testing.T) {
	h := getCSIHandler(nil, 'r')
	assert.Same(t, csiSRHandler, h)
}

func TestGetCSIHandlerStandaloneDECELR(t *testing.T) {
	h := getCSIHandler([]byte{'\''}, 'z')
	assert.Same(t, csiDECELRHandler, h)
}

func TestGetCSIHandlerUnknownHighFinal(t *testing.T) {
	h := getCSIHandler(nil, 'x')
	assert.Same(t, csiNoHandler, h)
}

func TestCSIDoCUUDescribesDirection(t *testing.T) {
	p, sb := newTestPutter()
	require.NoError(t, csiDoCUU(0x41, 0, p, []uint32{3}))
	require.NoError(t, p.Flush())
	assert.Contains(t, sb.String(), "Move the cursor up 3 lines.")
}

func TestCSIDoCUUSingular(t *testing.T) {
	p, sb := newTestPutter()
	require.NoError(t, csiDoCUU(0x41, 0, p, []uint32{1}))
	require.NoError(t, p.Flush())
	assert.Contains(t, sb.String(), "1 line.")
}

func TestCSIDoEDVariants(t *testing.T) {
	p, sb := newTestPutter()
	require.NoError(t, csiDoED(0x4A, 0, p, []uint32{2}))
	require.NoError(t, p.Flush())
	assert.Contains(t, sb.String(), "Clear the screen.")
}

func TestCSIDoSGRSimpleBoldRed(t *testing.T) {
	p, sb := newTestPutter()
	require.NoError(t, csiDoSGR(0x6D, 0, p, []uint32{1, 31}))
	require.NoError(t, p.Flush())
	out := sb.String()
	assert.Contains(t, out, "Set bold text.")
	assert.Contains(t, out, "Set foreground color red.")
}

func TestCSIDoSGRIndexedColor(t *testing.T) {
	p, sb := newTestPutter()
	require.NoError(t, csiDoSGR(0x6D, 0, p, []uint32{38, 5, 201}))
	require.NoError(t, p.Flush())
	assert.Contains(t, sb.String(), "Set foreground color to index 201.")
}

func TestCSIDoSMPrivateMode(t *testing.T) {
	p, sb := newTestPutter()
	require.NoError(t, csiDoSM(0x68, '?', p, []uint32{25}))
	require.NoError(t, p.Flush())
	assert.Contains(t, sb.String(), "(DEC) Show cursor.")
}

func TestCSIDoSMStandardMode(t *testing.T) {
	p, sb := newTestPutter()
	require.NoError(t, csiDoSM(0x68, 0, p, []uint32{4}))
	require.NoError(t, p.Flush())
	assert.Contains(t, sb.String(), "INSERTION REPLACEMENT MODE (IRM) -> INSERT")
}

func TestCSIDoDECMouseNoButtons(t *testing.T) {
	p, sb := newTestPutter()
	require.NoError(t, csiDoDECMouse(0, 0, p, []uint32{0, 0, 5, 10}))
	require.NoError(t, p.Flush())
	assert.Contains(t, sb.String(), "(DEC) Mouse at [5,5].")
}

func TestCSIDoDECMouseWithButtons(t *testing.T) {
	p, sb := newTestPutter()
	require.NoError(t, csiDoDECMouse(0, 0, p, []uint32{0, 0b0101, 5, 10}))
	require.NoError(t, p.Flush())
	assert.Contains(t, sb.String(), "[down:right/left]")
}

func TestCSIDoWMResize(t *testing.T) {
	p, sb := newTestPutter()
	require.NoError(t, csiDoWM(0, 0, p, []uint32{8, 24, 80}))
	require.NoError(t, p.Flush())
	assert.Contains(t, sb.String(), "height 24 and width 80 in characters")
}
