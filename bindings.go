package readline

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Binding errors.
var (
	// ErrBindingExists is returned when adding a custom binding for a key that already has one.
	ErrBindingExists = errors.New("key binding already exists")
	// ErrBindingNotFound is returned when changing or removing a key without a custom binding.
	ErrBindingNotFound = errors.New("key binding not found")
	// ErrBaseBinding is returned when a custom binding would hide a built-in one.
	ErrBaseBinding = errors.New("key is bound by default")
	// ErrUnknownOperation is returned for operation names that do not exist.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrEmptyDescriptor is returned for an empty key descriptor.
	ErrEmptyDescriptor = errors.New("empty key descriptor")
)

// Binding is what a key runs: either a built-in operation or a function.
type Binding struct {
	Op Operation
	// Arg is data for the operation, the digit for OpDigitArgument.
	Arg int
	// Func runs instead of Op when set. The handler records the key as OpCustom.
	Func func(h *KeyHandler)
}

// BindOperation returns a binding that runs op.
func BindOperation(op Operation) Binding {
	return Binding{Op: op}
}

// BindFunc returns a binding that runs fn.
func BindFunc(fn func(h *KeyHandler)) Binding {
	return Binding{Op: OpCustom, Func: fn}
}

func (b Binding) String() string {
	if b.Op == OpDigitArgument {
		return b.Op.String() + " " + strconv.Itoa(b.Arg)
	}
	return b.Op.String()
}

// baseBindings is the default key map. It is never modified.
var baseBindings = func() map[string]Binding {
	m := map[string]Binding{
		// Cursor movement
		"LeftArrow":       BindOperation(OpBackwardChar),
		"Ctrl+B":          BindOperation(OpBackwardChar),
		"Alt+B":           BindOperation(OpBackwardWord),
		"Ctrl+LeftArrow":  BindOperation(OpBackwardWord),
		"RightArrow":      BindOperation(OpForwardChar),
		"Ctrl+F":          BindOperation(OpForwardChar),
		"Alt+F":           BindOperation(OpForwardWord),
		"Ctrl+RightArrow": BindOperation(OpForwardWord),
		"Home":            BindOperation(OpBeginningOfLine),
		"Ctrl+A":          BindOperation(OpBeginningOfLine),
		"End":             BindOperation(OpEndOfLine),
		"Ctrl+E":          BindOperation(OpEndOfLine),

		// Deletion
		"Backspace":     BindOperation(OpBackwardDeleteChar),
		"Ctrl+H":        BindOperation(OpBackwardDeleteChar),
		"Delete":        BindOperation(OpDeleteChar),
		"Ctrl+D":        BindOperation(OpDeleteChar),
		"Escape":        BindOperation(OpClearLine),
		"Ctrl+L":        BindOperation(OpClearLine),
		"Ctrl+U":        BindOperation(OpUnixLineDiscard),
		"Ctrl+K":        BindOperation(OpKillLine),
		"Ctrl+W":        BindOperation(OpUnixWordRubout),
		"Alt+Backspace": BindOperation(OpUnixWordRubout),
		"Alt+D":         BindOperation(OpKillWord),
		"Alt+Oem5":      BindOperation(OpDeleteHorizontalSpace),

		// History
		"UpArrow":             BindOperation(OpPreviousHistory),
		"Ctrl+P":              BindOperation(OpPreviousHistory),
		"DownArrow":           BindOperation(OpNextHistory),
		"Ctrl+N":              BindOperation(OpNextHistory),
		"Alt+OemPeriod":       BindOperation(OpYankLastArg),
		"Alt+Shift+OemComma":  BindOperation(OpBeginningOfHistory),
		"Alt+Shift+OemPeriod": BindOperation(OpEndOfHistory),

		// Transposition
		"Ctrl+T": BindOperation(OpTransposeChars),
		"Alt+T":  BindOperation(OpTransposeWords),

		// Completion
		"Tab":          BindOperation(OpComplete),
		"Ctrl+I":       BindOperation(OpComplete),
		"Shift+Tab":    BindOperation(OpMenuCompleteBackward),
		"Ctrl+Shift+I": BindOperation(OpMenuCompleteBackward),
		"Alt+Shift+D8": BindOperation(OpInsertCompletions),

		// Case
		"Alt+L": BindOperation(OpDowncaseWord),
		"Alt+U": BindOperation(OpUpcaseWord),
		"Alt+V": BindOperation(OpDowncaseChar),
		"Alt+C": BindOperation(OpCapitalizeChar),

		"Ctrl+Y": BindOperation(OpYank),

		// Insertion
		"Alt+Shift+D3": BindOperation(OpInsertComment),
		"Alt+Shift+D7": BindOperation(OpTildeExpand),
		"Alt+Tab":      BindOperation(OpTabInsert),

		// Undo
		"Ctrl+Shift+OemMinus": BindOperation(OpUndo),
		"Alt+R":               BindOperation(OpRevertLine),

		"Alt+Subtract": BindOperation(OpNegativeArgument),
	}
	for d := range 10 {
		m["Alt+"+KeyCode(int(KeyD0)+d).String()] = Binding{Op: OpDigitArgument, Arg: d}
	}
	return m
}()

// KeyBindings holds custom key bindings.
//
// A binding maps a key descriptor such as "Alt+Shift+F" or "Ctrl+O" to an
// Operation or to a function run with the KeyHandler. Descriptors are
// normalized when added, so "control+o" and "Ctrl+O" name the same key.
//
// Custom bindings are looked up before the default key map but may only
// use keys the default map leaves free: adding a default key fails with
// ErrBaseBinding, and the defaults can be neither changed nor removed.
// Bindings can be built in code or loaded from a TOML file with
// LoadKeyBindings.
//
// Lookup on a nil *KeyBindings sees only the defaults.
type KeyBindings struct {
	custom map[string]Binding
}

// NewKeyBindings returns an empty set of custom bindings.
func NewKeyBindings() *KeyBindings {
	return &KeyBindings{custom: make(map[string]Binding)}
}

// Add binds a free key.
func (kb *KeyBindings) Add(descriptor string, b Binding) error {
	d, err := ParseDescriptor(descriptor)
	if err != nil {
		return err
	}
	if _, ok := baseBindings[d]; ok {
		return fmt.Errorf("%w: %s", ErrBaseBinding, d)
	}
	if _, ok := kb.custom[d]; ok {
		return fmt.Errorf("%w: %s", ErrBindingExists, d)
	}
	kb.custom[d] = normalizeBinding(b)
	return nil
}

// Change replaces an existing custom binding.
func (kb *KeyBindings) Change(descriptor string, b Binding) error {
	d, err := ParseDescriptor(descriptor)
	if err != nil {
		return err
	}
	if _, ok := kb.custom[d]; !ok {
		return fmt.Errorf("%w: %s", ErrBindingNotFound, d)
	}
	kb.custom[d] = normalizeBinding(b)
	return nil
}

// Remove deletes a custom binding.
func (kb *KeyBindings) Remove(descriptor string) error {
	d, err := ParseDescriptor(descriptor)
	if err != nil {
		return err
	}
	if _, ok := kb.custom[d]; !ok {
		return fmt.Errorf("%w: %s", ErrBindingNotFound, d)
	}
	delete(kb.custom, d)
	return nil
}

// Descriptors returns the keys with custom bindings, sorted.
func (kb *KeyBindings) Descriptors() []string {
	out := make([]string, 0, len(kb.custom))
	for d := range kb.custom {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Lookup resolves a key against the custom bindings and then the default
// key map. A nil KeyBindings only has the default map.
func (kb *KeyBindings) Lookup(k Key) (Binding, bool) {
	d := k.Descriptor()
	if d == "" {
		return Binding{}, false
	}
	if kb != nil {
		if b, ok := kb.custom[d]; ok {
			return b, true
		}
	}
	b, ok := baseBindings[d]
	return b, ok
}

// merge returns a new set holding the bindings of kb and other. A key bound
// in both is an error.
func (kb *KeyBindings) merge(other *KeyBindings) (*KeyBindings, error) {
	out := NewKeyBindings()
	for _, set := range []*KeyBindings{kb, other} {
		if set == nil {
			continue
		}
		for d, b := range set.custom {
			if _, ok := out.custom[d]; ok {
				return nil, fmt.Errorf("%w: %s", ErrBindingExists, d)
			}
			out.custom[d] = b
		}
	}
	return out, nil
}

func normalizeBinding(b Binding) Binding {
	if b.Func != nil {
		b.Op = OpCustom
	}
	return b
}
