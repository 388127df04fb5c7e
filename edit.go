package readline

import (
	"strings"
	"unicode"
)

// TransposeChars swaps the characters on either side of the cursor. At the
// end of the line the last two characters are swapped instead.
func (b *lineBuffer) TransposeChars() {
	if b.AtStart() || len(b.text) < 2 {
		return
	}
	first, second := b.pos-1, b.pos
	if b.AtEnd() {
		first, second = first-1, second-1
	}
	text := []rune(b.Text())
	text[first], text[second] = text[second], text[first]

	target := b.pos + 1
	if target > len(text) {
		target = len(text)
	}
	b.ReplaceAll(string(text))
	b.MoveLeft(b.pos - target)
}

// TransposeWords swaps the words on either side of the space under the
// cursor. The cursor keeps its position.
func (b *lineBuffer) TransposeWords() {
	if b.AtEnd() || b.text[b.pos] != ' ' {
		return
	}
	start := b.pos
	for start > 0 && b.text[start-1] != ' ' {
		start--
	}
	end := b.pos + 1
	for end < len(b.text) && b.text[end] != ' ' {
		end++
	}
	first := string(b.text[start:b.pos])
	second := string(b.text[b.pos+1 : end])
	if first == "" || second == "" {
		return
	}

	pos := b.pos
	b.begin()
	defer b.end()
	b.MoveLeft(pos - start)
	b.DeleteForward(end - start)
	b.Insert(second+" "+first, 1)
	b.MoveLeft(b.pos - pos)
}

// UppercaseWord skips whitespace and upper-cases the following word,
// leaving the cursor after it.
func (b *lineBuffer) UppercaseWord() {
	b.recaseWord(unicode.ToUpper)
}

// LowercaseWord is UppercaseWord with the opposite case.
func (b *lineBuffer) LowercaseWord() {
	b.recaseWord(unicode.ToLower)
}

func (b *lineBuffer) recaseWord(conv func(rune) rune) {
	i := b.pos
	for i < len(b.text) && unicode.IsSpace(b.text[i]) {
		i++
	}
	b.MoveRight(i - b.pos)
	for !b.AtEnd() && b.text[b.pos] != ' ' {
		b.replaceUnderCursor(conv(b.text[b.pos]))
	}
}

// UppercaseCharMoveToEndOfWord upper-cases the character under the cursor
// and moves to the end of the word.
func (b *lineBuffer) UppercaseCharMoveToEndOfWord() {
	b.recaseCharMoveToEndOfWord(unicode.ToUpper)
}

// LowercaseCharMoveToEndOfWord is UppercaseCharMoveToEndOfWord with the
// opposite case.
func (b *lineBuffer) LowercaseCharMoveToEndOfWord() {
	b.recaseCharMoveToEndOfWord(unicode.ToLower)
}

func (b *lineBuffer) recaseCharMoveToEndOfWord(conv func(rune) rune) {
	if b.AtEnd() {
		return
	}
	b.replaceUnderCursor(conv(b.text[b.pos]))
	b.MoveWordRight()
}

// replaceUnderCursor overwrites the character under the cursor and steps past it.
func (b *lineBuffer) replaceUnderCursor(r rune) {
	b.DeleteForward(1)
	b.insertRune(r)
}

// InsertHomeDirectory replaces a "~" under or just behind the cursor with home.
func (b *lineBuffer) InsertHomeDirectory(home string) {
	if len(b.text) == 0 {
		return
	}
	onCursor := b.at(b.pos)
	behind := b.at(b.pos - 1)
	if b.AtStart() {
		behind = b.text[0]
	}

	switch {
	case onCursor == '~':
		b.DeleteForward(1)
	case behind == '~':
		if b.AtStart() {
			b.DeleteForward(1)
		} else {
			b.DeleteBackward(1)
		}
	default:
		return
	}
	b.Insert(home, 1)
}

// InsertComment puts "#" at the start of the line. The cursor stays on the
// character it was on.
func (b *lineBuffer) InsertComment() {
	pos := b.pos
	b.MoveToStart()
	b.insertRune('#')
	b.MoveRight(pos)
}

// DeleteHorizontalSpace removes all whitespace around the cursor.
func (b *lineBuffer) DeleteHorizontalSpace() {
	end := b.pos
	for end < len(b.text) && unicode.IsSpace(b.text[end]) {
		end++
	}
	b.DeleteForward(end - b.pos)

	start := b.pos
	for start > 0 && unicode.IsSpace(b.text[start-1]) {
		start--
	}
	b.DeleteBackward(b.pos - start)
}

// KillToStart deletes everything before the cursor and returns it.
func (b *lineBuffer) KillToStart() string {
	killed := string(b.text[:b.pos])
	b.DeleteBackward(b.pos)
	return killed
}

// KillToEnd deletes everything from the cursor on and returns it.
func (b *lineBuffer) KillToEnd() string {
	killed := string(b.text[b.pos:])
	b.DeleteForward(len(b.text) - b.pos)
	return killed
}

// KillWordBackward deletes the whitespace before the cursor and the word
// before it, and returns what was deleted.
func (b *lineBuffer) KillWordBackward() string {
	start := b.pos
	for start > 0 && unicode.IsSpace(b.text[start-1]) {
		start--
	}
	for start > 0 && !unicode.IsSpace(b.text[start-1]) {
		start--
	}
	killed := string(b.text[start:b.pos])
	b.DeleteBackward(b.pos - start)
	return killed
}

// KillWordForward deletes the whitespace after the cursor and the word
// after it, and returns what was deleted.
func (b *lineBuffer) KillWordForward() string {
	end := b.pos
	for end < len(b.text) && unicode.IsSpace(b.text[end]) {
		end++
	}
	for end < len(b.text) && !unicode.IsSpace(b.text[end]) {
		end++
	}
	killed := string(b.text[b.pos:end])
	b.DeleteForward(end - b.pos)
	return killed
}

// lastIndexAny returns the index of the last rune in text[:limit] that is
// one of seps, or -1.
func lastIndexAny(text []rune, limit int, seps []rune) int {
	for i := limit - 1; i >= 0; i-- {
		if strings.ContainsRune(string(seps), text[i]) {
			return i
		}
	}
	return -1
}
