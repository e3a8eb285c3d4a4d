package putter

import (
	"bytes"
	"testing"

	"github.com/cloudwego/gopkg/bufiox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPutter(buf *bytes.Buffer) *Putter {
	p := New(bufiox.NewDefaultWriter(buf), 0)
	return p
}

func TestTextRunOpenAppendClose(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPutter(&buf)

	require.NoError(t, p.Start("text", "|", "|-", "-|"))
	require.NoError(t, p.Puts("Hello, world"))
	require.NoError(t, p.Finish("|"))
	require.NoError(t, p.Flush())

	assert.Equal(t, "|Hello, world|\n", buf.String())
}

func TestSingleLines(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPutter(&buf)

	require.NoError(t, p.SingleEsc("Esc [ 1 ; 31 m"))
	require.NoError(t, p.SingleLabel("SGR: SELECT GRAPHIC RENDITION"))
	require.NoError(t, p.SingleDesc("Set bold text."))
	require.NoError(t, p.Flush())

	want := ": Esc [ 1 ; 31 m\n" +
		"& SGR: SELECT GRAPHIC RENDITION\n" +
		"\" Set bold text.\n"
	assert.Equal(t, want, buf.String())
}

func TestLineWrapsAtWidth(t *testing.T) {
	var buf bytes.Buffer
	p := New(bufiox.NewDefaultWriter(&buf), 10)

	require.NoError(t, p.Start("text", "|", "|-", "-|"))
	require.NoError(t, p.Puts("0123456789"))
	require.NoError(t, p.Finish("|"))
	require.NoError(t, p.Flush())

	out := buf.String()
	assert.Contains(t, out, "|-")
	assert.Contains(t, out, "-|")
}

func TestColorizerDecoratesSigil(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPutter(&buf)
	p.SetColorizer(func(role, sigil string) string {
		return "<" + role + ">" + sigil
	})

	require.NoError(t, p.SingleEsc("x"))
	require.NoError(t, p.Flush())

	assert.Equal(t, "<esc>: x\n", buf.String())
}
