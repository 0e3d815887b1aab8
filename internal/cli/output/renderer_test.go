package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestMode_Valid(t *testing.T) {
	for _, m := range []Mode{"", ModeAuto, ModeText, ModeMarkdown, ModeJSON} {
		assert.True(t, m.Valid(), "mode %q", m)
	}
	assert.False(t, Mode("xml").Valid())
}

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{name: "auto on tty", mode: ModeAuto, isTTY: true, want: ModeText},
		{name: "auto piped", mode: ModeAuto, isTTY: false, want: ModeMarkdown},
		{name: "empty piped", mode: "", isTTY: false, want: ModeMarkdown},
		{name: "explicit json on tty", mode: ModeJSON, isTTY: true, want: ModeJSON},
		{name: "explicit text piped", mode: ModeText, isTTY: false, want: ModeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
			assert.Equal(t, tt.isTTY, r.IsTTY())
		})
	}
}

func TestRenderer_NonFileIsNotTerminal(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_Header(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Header("Tokens")
	assert.Equal(t, "## Tokens\n\n", out.String())

	r, out, _ = newTestRenderer(ModeJSON, false)
	r.Header("Tokens")
	assert.Empty(t, out.String())

	r, out, _ = newTestRenderer(ModeText, false)
	r.Header("Tokens")
	assert.Equal(t, "Tokens\n", out.String(), "no styling without a terminal")
}

func TestRenderer_ErrorGoesToErrOut(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeMarkdown, false)
	r.Error("boom")
	assert.Empty(t, out.String())
	assert.Equal(t, "error: boom\n", errOut.String())
}

func TestRenderer_SuccessAndMuted(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeMarkdown, false)
	r.Success("done")
	assert.Empty(t, out.String())
	assert.Equal(t, "done\n", errOut.String())
	assert.Equal(t, "; a.mc", r.Muted("; a.mc"))
}

func TestRenderer_JSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON, false)
	require.NoError(t, r.JSON(map[string]int{"lines": 2}))
	assert.Equal(t, "{\n  \"lines\": 2\n}\n", out.String())
}
