package readline

import (
	"fmt"
	"strings"
	"unicode"
)

// KeyCode identifies a physical key independent of the character it produced.
type KeyCode int

// Key codes understood by the binding table. Letters and digits are
// contiguous so that arithmetic on them is safe.
const (
	KeyNone KeyCode = iota
	KeyBackspace
	KeyTab
	KeyEnter
	KeyEscape
	KeySpacebar
	KeyDelete
	KeyHome
	KeyEnd
	KeyLeftArrow
	KeyUpArrow
	KeyRightArrow
	KeyDownArrow
	KeyOemPeriod
	KeyOemComma
	KeyOemMinus
	KeyOem5
	KeySubtract
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyD0
	KeyD1
	KeyD2
	KeyD3
	KeyD4
	KeyD5
	KeyD6
	KeyD7
	KeyD8
	KeyD9
)

var keyCodeNames = map[KeyCode]string{
	KeyNone:       "None",
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeySpacebar:   "Spacebar",
	KeyDelete:     "Delete",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyLeftArrow:  "LeftArrow",
	KeyUpArrow:    "UpArrow",
	KeyRightArrow: "RightArrow",
	KeyDownArrow:  "DownArrow",
	KeyOemPeriod:  "OemPeriod",
	KeyOemComma:   "OemComma",
	KeyOemMinus:   "OemMinus",
	KeyOem5:       "Oem5",
	KeySubtract:   "Subtract",
}

// String returns the name used for the key in descriptors, e.g. "LeftArrow", "B" or "D7".
func (c KeyCode) String() string {
	switch {
	case c >= KeyA && c <= KeyZ:
		return string(rune('A' + int(c-KeyA)))
	case c >= KeyD0 && c <= KeyD9:
		return "D" + string(rune('0'+int(c-KeyD0)))
	}
	if name, ok := keyCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", int(c))
}

// Modifier is a set of modifier keys held while a key was pressed.
type Modifier int

// Modifier flags.
const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Key is a single key event: the key code, the character it produced and the
// modifiers that were held.
//
// Terminals report punctuation as characters, so a Key built from '>' has
// no Shift modifier. Descriptor fills in the code and the Shift from the
// character, so '>' and Shift+'.' both read as "Shift+OemPeriod" and match
// the same binding.
type Key struct {
	Code KeyCode
	Char rune
	Mod  Modifier
}

// With returns a copy of k with the given modifiers added.
func (k Key) With(mod Modifier) Key {
	k.Mod |= mod
	return k
}

// Is reports whether k has exactly the given code and modifiers.
func (k Key) Is(code KeyCode, mod Modifier) bool {
	code2, mod2 := k.normalize()
	return code2 == code && mod2 == mod
}

type keyFallback struct {
	code KeyCode
	mod  Modifier
}

// Some terminals report punctuation without a key code. These are mapped
// back to the key that produces them on a US layout.
var punctuationFallback = map[rune]keyFallback{
	'.':    {KeyOemPeriod, 0},
	'>':    {KeyOemPeriod, ModShift},
	',':    {KeyOemComma, 0},
	'<':    {KeyOemComma, ModShift},
	'_':    {KeyOemMinus, ModShift},
	'\x1f': {KeyOemMinus, ModShift | ModCtrl},
	'\\':   {KeyOem5, 0},
	'#':    {KeyD3, ModShift},
	'&':    {KeyD7, ModShift},
	'*':    {KeyD8, ModShift},
}

func (k Key) normalize() (KeyCode, Modifier) {
	code, mod := k.Code, k.Mod
	if code == KeyNone {
		if fb, ok := punctuationFallback[k.Char]; ok {
			code = fb.code
			mod |= fb.mod
		}
	} else if k.Char == '-' {
		code = KeySubtract
	}
	return code, mod
}

// Descriptor returns the canonical name of the key used by binding tables,
// for example "Ctrl+B", "Alt+Shift+OemComma" or "Shift+Tab". Keys without a
// code and without a known fallback are named after their character.
func (k Key) Descriptor() string {
	code, mod := k.normalize()
	name := code.String()
	if code == KeyNone {
		if k.Char == 0 || !unicode.IsPrint(k.Char) {
			return ""
		}
		name = string(k.Char)
	}
	return modifierPrefix(mod) + name
}

func (k Key) String() string {
	if d := k.Descriptor(); d != "" {
		return d
	}
	return fmt.Sprintf("Key(%q)", k.Char)
}

func modifierPrefix(mod Modifier) string {
	var sb strings.Builder
	if mod&ModCtrl != 0 {
		sb.WriteString("Ctrl+")
	}
	if mod&ModAlt != 0 {
		sb.WriteString("Alt+")
	}
	if mod&ModShift != 0 {
		sb.WriteString("Shift+")
	}
	return sb.String()
}

// ParseDescriptor normalizes a user supplied key descriptor such as
// "alt+shift+f", "Control+_" or "Alt+." to its canonical form.
func ParseDescriptor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyDescriptor
	}
	parts := strings.Split(s, "+")
	// "Alt++" and "+" name the plus key.
	switch {
	case s == "+":
		parts = []string{"+"}
	case strings.HasSuffix(s, "++"):
		parts = append(parts[:len(parts)-2], "+")
	}
	name := parts[len(parts)-1]
	var mod Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "control":
			mod |= ModCtrl
		case "alt", "meta":
			mod |= ModAlt
		case "shift":
			mod |= ModShift
		default:
			return "", fmt.Errorf("unknown modifier %q in key %q", p, s)
		}
	}

	if code, ok := lookupKeyCode(name); ok {
		return Key{Code: code, Mod: mod}.Descriptor(), nil
	}
	if r := []rune(name); len(r) == 1 {
		k := KeyFromRune(r[0])
		if unicode.IsLetter(r[0]) && r[0] < unicode.MaxASCII {
			// A lone letter names the key, not the shifted character.
			k.Mod &^= ModShift
		}
		k.Mod |= mod
		if d := k.Descriptor(); d != "" {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown key %q", s)
}

func lookupKeyCode(name string) (KeyCode, bool) {
	if len(name) < 2 {
		return KeyNone, false
	}
	for c := KeyBackspace; c <= KeyD9; c++ {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}
	switch strings.ToLower(name) {
	case "space":
		return KeySpacebar, true
	case "left":
		return KeyLeftArrow, true
	case "right":
		return KeyRightArrow, true
	case "up":
		return KeyUpArrow, true
	case "down":
		return KeyDownArrow, true
	case "esc":
		return KeyEscape, true
	case "del":
		return KeyDelete, true
	}
	return KeyNone, false
}

// KeyFromRune returns the key event a terminal reports for a single typed
// rune, without any escape sequence decoding.
func KeyFromRune(r rune) Key {
	switch {
	case r == 0x7f:
		return Key{Code: KeyBackspace, Char: '\b'}
	case r == '\b':
		return Key{Code: KeyH, Char: r, Mod: ModCtrl}
	case r == '\t':
		return Key{Code: KeyTab, Char: r}
	case r == '\r':
		return Key{Code: KeyEnter, Char: r}
	case r == '\n':
		return Key{Code: KeyJ, Char: r, Mod: ModCtrl}
	case r == 0x1b:
		return Key{Code: KeyEscape, Char: r}
	case r == 0:
		return Key{Code: KeySpacebar, Char: r, Mod: ModCtrl}
	case r >= 0x01 && r <= 0x1a:
		return Key{Code: KeyA + KeyCode(r-0x01), Char: r, Mod: ModCtrl}
	case r == ' ':
		return Key{Code: KeySpacebar, Char: r}
	case r >= 'a' && r <= 'z':
		return Key{Code: KeyA + KeyCode(r-'a'), Char: r}
	case r >= 'A' && r <= 'Z':
		return Key{Code: KeyA + KeyCode(r-'A'), Char: r, Mod: ModShift}
	case r >= '0' && r <= '9':
		return Key{Code: KeyD0 + KeyCode(r-'0'), Char: r}
	case r == '-':
		return Key{Code: KeySubtract, Char: r}
	}
	return Key{Char: r}
}
