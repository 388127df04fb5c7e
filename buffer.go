package readline

import (
	"slices"
	"strings"
)

const tabWidth = 8

// lineBuffer owns the text being edited and the logical cursor, and mirrors
// every change onto the console. The screen cursor is never trusted as a
// source of truth: moves are replayed one column at a time, wrapping at
// BufferWidth-1, so the two stay in step on wrapped lines.
type lineBuffer struct {
	text    []rune
	pos     int
	console Console

	// onChange is called after the text changes. Inside a batch it is
	// called once, when the outermost batch ends.
	onChange func()
	depth    int
	dirty    bool
}

func newLineBuffer(console Console) *lineBuffer {
	return &lineBuffer{console: console}
}

func (b *lineBuffer) Text() string { return string(b.text) }
func (b *lineBuffer) Pos() int     { return b.pos }
func (b *lineBuffer) Len() int     { return len(b.text) }
func (b *lineBuffer) AtStart() bool {
	return b.pos == 0
}
func (b *lineBuffer) AtEnd() bool {
	return b.pos == len(b.text)
}

// at returns the character at i, or 0 when i is out of range.
func (b *lineBuffer) at(i int) rune {
	if i < 0 || i >= len(b.text) {
		return 0
	}
	return b.text[i]
}

func (b *lineBuffer) begin() {
	b.depth++
}

func (b *lineBuffer) end() {
	b.depth--
	if b.depth == 0 && b.dirty {
		b.dirty = false
		b.notify()
	}
}

func (b *lineBuffer) changed() {
	if b.depth > 0 {
		b.dirty = true
		return
	}
	b.notify()
}

func (b *lineBuffer) notify() {
	if b.onChange != nil {
		b.onChange()
	}
}

// MoveLeft moves the cursor count characters left, stopping at the start
// of the line.
func (b *lineBuffer) MoveLeft(count int) {
	left, top := b.console.CursorLeft(), b.console.CursorTop()
	width := b.console.BufferWidth()
	moved := 0
	for ; moved < count && b.pos > 0; moved++ {
		if left == 0 {
			left = width - 1
			top--
		} else {
			left--
		}
		b.pos--
	}
	if moved > 0 {
		b.console.SetCursorPosition(left, top)
	}
}

// MoveRight moves the cursor count characters right, stopping at the end
// of the line.
func (b *lineBuffer) MoveRight(count int) {
	left, top := b.console.CursorLeft(), b.console.CursorTop()
	width := b.console.BufferWidth()
	moved := 0
	for ; moved < count && b.pos < len(b.text); moved++ {
		if left == width-1 {
			left = 0
			top++
		} else {
			left++
		}
		b.pos++
	}
	if moved > 0 {
		b.console.SetCursorPosition(left, top)
	}
}

func (b *lineBuffer) MoveToStart() {
	b.MoveLeft(b.pos)
}

func (b *lineBuffer) MoveToEnd() {
	b.MoveRight(len(b.text) - b.pos)
}

// MoveWordLeft skips the spaces left of the cursor, then the word before them.
func (b *lineBuffer) MoveWordLeft() {
	i := b.pos
	for i > 0 && b.text[i-1] == ' ' {
		i--
	}
	for i > 0 && b.text[i-1] != ' ' {
		i--
	}
	b.MoveLeft(b.pos - i)
}

// MoveWordRight skips the spaces right of the cursor, then the word after them.
func (b *lineBuffer) MoveWordRight() {
	i := b.pos
	for i < len(b.text) && b.text[i] == ' ' {
		i++
	}
	for i < len(b.text) && b.text[i] != ' ' {
		i++
	}
	b.MoveRight(i - b.pos)
}

// Insert writes text at the cursor repeat times.
func (b *lineBuffer) Insert(text string, repeat int) {
	for range repeat {
		for _, r := range text {
			b.insertRune(r)
		}
	}
}

func (b *lineBuffer) insertRune(r rune) {
	if r == 0 {
		return
	}
	chunk := []rune{r}
	if r == '\t' {
		n := tabWidth - b.console.CursorLeft()%tabWidth
		chunk = []rune(strings.Repeat(" ", n))
	}

	if b.AtEnd() {
		b.text = append(b.text, chunk...)
		b.console.Write(string(chunk))
		b.pos += len(chunk)
		b.changed()
		return
	}

	left, top := b.console.CursorLeft(), b.console.CursorTop()
	tail := string(b.text[b.pos:])
	b.text = slices.Insert(b.text, b.pos, chunk...)
	b.console.Write(string(chunk) + tail)
	b.console.SetCursorPosition(left, top)
	b.MoveRight(len(chunk))
	b.changed()
}

// DeleteForward removes up to count characters starting at the cursor.
func (b *lineBuffer) DeleteForward(count int) {
	count = min(count, len(b.text)-b.pos)
	if count <= 0 {
		return
	}
	b.text = slices.Delete(b.text, b.pos, b.pos+count)

	left, top := b.console.CursorLeft(), b.console.CursorTop()
	tail := string(b.text[b.pos:])
	blank := strings.Repeat(" ", count)
	if b.console.PasswordMode() && b.console.PasswordMaskChar() != 0 {
		// The blanks must really be blank, not mask characters.
		b.console.Write(tail)
		b.console.WriteRaw(blank)
	} else {
		b.console.Write(tail + blank)
	}
	b.console.SetCursorPosition(left, top)
	b.changed()
}

// DeleteBackward removes up to count characters before the cursor.
func (b *lineBuffer) DeleteBackward(count int) {
	count = min(count, b.pos)
	if count <= 0 {
		return
	}
	b.MoveLeft(count)
	b.DeleteForward(count)
}

// Clear removes the whole line.
func (b *lineBuffer) Clear() {
	b.begin()
	defer b.end()
	b.MoveToStart()
	b.DeleteForward(len(b.text))
}

// ReplaceAll clears the line and writes text in its place. Observers see a
// single change.
func (b *lineBuffer) ReplaceAll(text string) {
	b.begin()
	defer b.end()
	b.Clear()
	b.Insert(text, 1)
}

// Redraw writes the whole line again from the current screen position,
// which must be where the line starts, and puts the cursor back.
func (b *lineBuffer) Redraw() {
	pos := b.pos
	b.console.Write(string(b.text))
	b.pos = len(b.text)
	b.MoveLeft(b.pos - pos)
}
