package readline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// bindingsFile is the layout of a key binding file:
//
//	[bindings]
//	"Alt+Shift+F" = "backward-delete-or-delete-char"
//	"Ctrl+O" = "kill-word"
type bindingsFile struct {
	Bindings map[string]string `toml:"bindings"`
}

// LoadKeyBindings reads custom key bindings from a TOML file.
func LoadKeyBindings(path string) (*KeyBindings, error) {
	var f bindingsFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to read key bindings %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return parseKeyBindings(f.Bindings)
}

// ParseKeyBindings decodes custom key bindings from TOML text.
func ParseKeyBindings(data string) (*KeyBindings, error) {
	var f bindingsFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key bindings: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return parseKeyBindings(f.Bindings)
}

// checkUndecoded rejects keys outside the [bindings] table.
func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}

func parseKeyBindings(raw map[string]string) (*KeyBindings, error) {
	descriptors := make([]string, 0, len(raw))
	for d := range raw {
		descriptors = append(descriptors, d)
	}
	sort.Strings(descriptors)

	kb := NewKeyBindings()
	for _, d := range descriptors {
		op, err := ParseOperation(raw[d])
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", d, err)
		}
		if err := kb.Add(d, BindOperation(op)); err != nil {
			return nil, fmt.Errorf("binding %q: %w", d, err)
		}
	}
	return kb, nil
}
