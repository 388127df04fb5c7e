package readline

import (
	"strconv"
	"strings"
)

// runeSource is the input side of a terminal.
type runeSource interface {
	ReadRune() (rune, int, error)
	// Buffered reports whether more input is already waiting. A lone ESC
	// with nothing buffered behind it is the Escape key itself.
	Buffered() bool
}

// keyDecoder turns the raw rune stream of a terminal into key events.
type keyDecoder struct {
	src runeSource
}

func newKeyDecoder(src runeSource) *keyDecoder {
	return &keyDecoder{src: src}
}

// ReadKey blocks until a complete key has been read. Unknown escape
// sequences decode to the zero Key, which no binding matches.
func (d *keyDecoder) ReadKey() (Key, error) {
	r, _, err := d.src.ReadRune()
	if err != nil {
		return Key{}, err
	}
	if r != 0x1b || !d.src.Buffered() {
		return KeyFromRune(r), nil
	}

	next, _, err := d.src.ReadRune()
	if err != nil {
		return Key{}, err
	}
	switch next {
	case '[':
		return d.readCSI()
	case 'O':
		return d.readSS3()
	}
	return KeyFromRune(next).With(ModAlt), nil
}

// readCSI decodes "ESC [ params final".
func (d *keyDecoder) readCSI() (Key, error) {
	var params strings.Builder
	for {
		r, _, err := d.src.ReadRune()
		if err != nil {
			return Key{}, err
		}
		if r >= 0x40 && r <= 0x7e {
			return decodeCSI(params.String(), r), nil
		}
		params.WriteRune(r)
	}
}

func (d *keyDecoder) readSS3() (Key, error) {
	r, _, err := d.src.ReadRune()
	if err != nil {
		return Key{}, err
	}
	if code, ok := cursorFinals[r]; ok {
		return Key{Code: code}, nil
	}
	return Key{}, nil
}

var cursorFinals = map[rune]KeyCode{
	'A': KeyUpArrow,
	'B': KeyDownArrow,
	'C': KeyRightArrow,
	'D': KeyLeftArrow,
	'H': KeyHome,
	'F': KeyEnd,
}

var tildeKeys = map[int]KeyCode{
	1: KeyHome,
	7: KeyHome,
	4: KeyEnd,
	8: KeyEnd,
	3: KeyDelete,
}

func decodeCSI(params string, final rune) Key {
	fields := strings.Split(params, ";")
	var mod Modifier
	if len(fields) > 1 {
		// xterm encodes modifiers as 1 + (shift | alt<<1 | ctrl<<2).
		if m, err := strconv.Atoi(fields[1]); err == nil && m > 1 {
			bits := m - 1
			if bits&1 != 0 {
				mod |= ModShift
			}
			if bits&2 != 0 {
				mod |= ModAlt
			}
			if bits&4 != 0 {
				mod |= ModCtrl
			}
		}
	}

	switch final {
	case 'Z':
		return Key{Code: KeyTab, Char: '\t', Mod: ModShift}
	case '~':
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return Key{}
		}
		if code, ok := tildeKeys[n]; ok {
			return Key{Code: code, Mod: mod}
		}
		return Key{}
	}
	if code, ok := cursorFinals[final]; ok {
		return Key{Code: code, Mod: mod}
	}
	return Key{}
}
