package teseq

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flw-cn/teseq/internal/inputbuf"
)

func newTestProcessor(cfg Config, input string) (*Processor, func() string) {
	ib := inputbuf.New(inputbuf.NewIOSource(bytes.NewReader([]byte(input))), inputbuf.DefaultCapacity)
	putr, sb := newTestPutter()
	pr := NewProcessor(cfg, ib, putr, nil)
	return pr, sb.String
}

func TestHandleNFDesignatesG0Ascii(t *testing.T) {
	pr, out := newTestProcessor(DefaultConfig(), "\x1b(B")
	require.NoError(t, pr.Run(context.Background()))
	s := out()
	assert.Contains(t, s, ": Esc ( B")
	assert.Contains(t, s, "GZD4")
	assert.Contains(t, s, "Designate 94-character set B (US-ASCII) to G0.")
}

// TestHandleNFDesignatesG0AsciiExactTranscript pins the full byte-for-byte
// transcript of a 94-character-set designation. Like the CSI exact-match
// test in processor_test.go, this catches a regression that re-commits an
// already-rewound savepoint (readCSISequence and handleNF's echo rewind
// both leave the input buffer not-saving before the outer Commit() runs):
// the designation body "(B" would otherwise be re-read as a spurious
// "|(B|" text run trailing the lines below.
func TestHandleNFDesignatesG0AsciiExactTranscript(t *testing.T) {
	pr, out := newTestProcessor(DefaultConfig(), "\x1b(B")
	require.NoError(t, pr.Run(context.Background()))
	want := ": Esc ( B\n" +
		"& GZD4: G0-DESIGNATE 94-SET\n" +
		"\" Designate 94-character set B (US-ASCII) to G0.\n" +
		"\n"
	assert.Equal(t, want, out())
}

func TestHandleNFInvalidSequenceFallsBackToLiteralEsc(t *testing.T) {
	// A control byte terminating the intermediate run makes the
	// sequence invalid; the ESC is reported literally.
	pr, out := newTestProcessor(DefaultConfig(), "\x1b(\x01")
	require.NoError(t, pr.Run(context.Background()))
	assert.Contains(t, out(), "ESC")
}

func TestHandleFpDECSC(t *testing.T) {
	pr, out := newTestProcessor(DefaultConfig(), "\x1b7")
	require.NoError(t, pr.Run(context.Background()))
	s := out()
	assert.Contains(t, s, ": Esc 7")
	assert.Contains(t, s, "& DECSC: SAVE CURSOR")
}

func TestHandleFsRIS(t *testing.T) {
	pr, out := newTestProcessor(DefaultConfig(), "\x1bc")
	require.NoError(t, pr.Run(context.Background()))
	s := out()
	assert.Contains(t, s, "& RIS: RESET TO INITIAL STATE")
}

func TestHandleC1NEL(t *testing.T) {
	pr, out := newTestProcessor(DefaultConfig(), "\x1bE")
	require.NoError(t, pr.Run(context.Background()))
	s := out()
	assert.Contains(t, s, "& NEL: NEXT LINE")
}

func TestHandleEscapeSequenceSuppressedEcho(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EchoEscapes = false
	pr, out := newTestProcessor(cfg, "\x1b7")
	require.NoError(t, pr.Run(context.Background()))
	s := out()
	assert.NotContains(t, s, "Esc 7")
	assert.Contains(t, s, "DECSC")
}

func TestHandleEscapeSequenceSuppressedDescriptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Describe = false
	pr, out := newTestProcessor(cfg, "\x1b[1mX")
	require.NoError(t, pr.Run(context.Background()))
	s := out()
	assert.Contains(t, s, "& SGR: SELECT GRAPHIC RENDITION")
	assert.NotContains(t, s, "Set bold text.")
}
