package readline

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingWriter struct {
	calls int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("broken pipe")
}

func TestTerminalConsoleWrite(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := newTerminalConsole(&out, 4)

	c.WriteRaw("abcdef")
	assert.Equal(t, "abcd\r\nef", out.String(), "Expected eager wrap at the width")
	assert.Equal(t, 2, c.CursorLeft())
	assert.Equal(t, 1, c.CursorTop())
	assert.Equal(t, 4, c.BufferWidth())
}

func TestTerminalConsoleDefaultWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 80, newTerminalConsole(&bytes.Buffer{}, 0).BufferWidth())
	assert.Equal(t, 80, newTerminalConsole(&bytes.Buffer{}, 1).BufferWidth())
}

func TestTerminalConsoleSetCursorPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		write     string
		left, top int
		want      string
	}{
		{name: "left on same row", write: "hello", left: 2, top: 0, want: "\r\x1b[2C"},
		{name: "to column zero", write: "hello", left: 0, top: 0, want: "\r"},
		{name: "up a row", write: "0123456789ab", left: 9, top: 0, want: "\x1b[1A\r\x1b[9C"},
		{name: "down a row", write: "abc", left: 3, top: 2, want: "\x1b[2B"},
		{name: "no move", write: "abc", left: 3, top: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			c := newTerminalConsole(&out, 10)
			c.WriteRaw(tt.write)
			out.Reset()

			c.SetCursorPosition(tt.left, tt.top)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, tt.left, c.CursorLeft())
			assert.Equal(t, tt.top, c.CursorTop())
		})
	}
}

func TestPasswordConsole(t *testing.T) {
	t.Parallel()

	t.Run("masked", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		c := newPasswordConsole(&out, 80, '*')
		c.Write("secret")
		assert.Equal(t, "******", out.String())
		assert.True(t, c.PasswordMode())
		assert.Equal(t, '*', c.PasswordMaskChar())

		out.Reset()
		c.WriteRaw("  ")
		assert.Equal(t, "  ", out.String(), "WriteRaw is never masked")
	})

	t.Run("silent", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		c := newPasswordConsole(&out, 80, 0)
		c.Write("secret")
		c.SetCursorPosition(0, 0)
		assert.Empty(t, out.String())
		assert.Equal(t, 0, c.CursorLeft())
	})
}

func TestTerminalConsoleStyles(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := newTerminalConsole(&out, 80)
	style := Color{R: 1, G: 2, B: 3}

	c.writeStyled(style, "> ")
	assert.Equal(t, style.ToANSI()+"> "+Reset(), out.String())
	assert.Equal(t, 2, c.CursorLeft(), "Escape codes take no columns")

	out.Reset()
	c.newline()
	assert.Equal(t, Reset()+"\r\n", out.String())
	assert.Equal(t, 0, c.CursorLeft())
	assert.Equal(t, 1, c.CursorTop())
}

func TestTerminalConsoleStickyError(t *testing.T) {
	t.Parallel()

	w := &failingWriter{}
	c := newTerminalConsole(w, 80)
	c.WriteRaw("a")
	c.WriteRaw("b")

	assert.EqualError(t, c.Err(), "broken pipe")
	assert.Equal(t, 1, w.calls, "Writes stop after the first failure")
	assert.Equal(t, 2, c.CursorLeft(), "Position tracking continues")
}
