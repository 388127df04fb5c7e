package readline

import (
	"fmt"
	"io"
	"strings"
)

// Console is the screen the line editor draws on.
//
// The editor keeps its own idea of the text and cursor and only uses the
// Console to mirror them. It reads CursorLeft, CursorTop and BufferWidth
// around every change to follow wrapped lines, and moves the cursor one
// column at a time with SetCursorPosition.
//
// Coordinates are zero based. CursorTop only has to be consistent within
// one line read, so implementations may count rows relative to where the
// prompt started. Tests can implement Console on a plain buffer; the
// terminal implementation writes ANSI escape sequences.
type Console interface {
	CursorLeft() int
	CursorTop() int
	BufferWidth() int
	SetCursorPosition(left, top int)
	// Write draws s at the cursor and advances it, wrapping at BufferWidth.
	// In password mode every character is drawn as PasswordMaskChar, and
	// nothing is drawn when the mask is the zero rune.
	Write(s string)
	// WriteRaw is Write without password masking. It is used for the prompt
	// and for erasing stale characters.
	WriteRaw(s string)
	PasswordMode() bool
	PasswordMaskChar() rune
}

// terminalConsole implements Console on top of an ANSI terminal. The real
// cursor position is never queried; it is tracked from what has been
// written, starting at column 0 of row 0 when the console is created.
type terminalConsole struct {
	out      io.Writer
	width    int
	left     int
	top      int
	password bool
	mask     rune
	err      error
}

func newTerminalConsole(out io.Writer, width int) *terminalConsole {
	if width <= 1 {
		width = 80
	}
	return &terminalConsole{out: out, width: width}
}

func newPasswordConsole(out io.Writer, width int, mask rune) *terminalConsole {
	c := newTerminalConsole(out, width)
	c.password = true
	c.mask = mask
	return c
}

func (c *terminalConsole) CursorLeft() int        { return c.left }
func (c *terminalConsole) CursorTop() int         { return c.top }
func (c *terminalConsole) BufferWidth() int       { return c.width }
func (c *terminalConsole) PasswordMode() bool     { return c.password }
func (c *terminalConsole) PasswordMaskChar() rune { return c.mask }

// Err returns the first write error seen by the console.
func (c *terminalConsole) Err() error {
	return c.err
}

func (c *terminalConsole) SetCursorPosition(left, top int) {
	if c.silent() {
		return
	}
	var sb strings.Builder
	switch dy := top - c.top; {
	case dy < 0:
		fmt.Fprintf(&sb, "\x1b[%dA", -dy)
	case dy > 0:
		fmt.Fprintf(&sb, "\x1b[%dB", dy)
	}
	if left != c.left {
		sb.WriteByte('\r')
		if left > 0 {
			fmt.Fprintf(&sb, "\x1b[%dC", left)
		}
	}
	c.emit(sb.String())
	c.left, c.top = left, top
}

func (c *terminalConsole) Write(s string) {
	if c.password {
		if c.silent() {
			return
		}
		s = strings.Repeat(string(c.mask), len([]rune(s)))
	}
	c.WriteRaw(s)
}

func (c *terminalConsole) WriteRaw(s string) {
	var sb strings.Builder
	for _, r := range s {
		sb.WriteRune(r)
		c.left++
		if c.left == c.width {
			// Wrap eagerly so the tracked position matches the terminal's
			// instead of sitting in its pending-wrap state.
			sb.WriteString("\r\n")
			c.left = 0
			c.top++
		}
	}
	c.emit(sb.String())
}

// writeStyled writes text wrapped in an ANSI style. The escape codes take
// no columns.
func (c *terminalConsole) writeStyled(style Color, text string) {
	c.emit(style.ToANSI())
	c.WriteRaw(text)
	c.emit(Reset())
}

// setStyle switches the style used for subsequent text.
func (c *terminalConsole) setStyle(style Color) {
	c.emit(style.ToANSI())
}

// newline clears all styles and moves to the start of the next row.
func (c *terminalConsole) newline() {
	c.emit(Reset() + "\r\n")
	c.left = 0
	c.top++
}

// silent reports whether the console echoes nothing at all.
func (c *terminalConsole) silent() bool {
	return c.password && c.mask == 0
}

func (c *terminalConsole) emit(s string) {
	if s == "" || c.err != nil {
		return
	}
	if _, err := io.WriteString(c.out, s); err != nil {
		c.err = err
	}
}
