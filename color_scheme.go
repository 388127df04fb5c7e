package readline

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ColorScheme styles the parts of the prompt line.
type ColorScheme struct {
	Name string `toml:"name"`
	// Prefix is used for the prompt.
	Prefix Color `toml:"prefix"`
	// Input is used for the text being edited.
	Input Color `toml:"input"`
	// Argument is used for the "(arg: N)" indicator.
	Argument Color `toml:"argument"`
}

// Color is a 24-bit foreground color, optionally bold.
type Color struct {
	R    uint8 `toml:"r"`
	G    uint8 `toml:"g"`
	B    uint8 `toml:"b"`
	Bold bool  `toml:"bold"`
}

// ThemeDefault has a green prompt and white input.
var ThemeDefault = &ColorScheme{
	Name:     "default",
	Prefix:   Color{R: 0, G: 255, B: 0, Bold: true},
	Input:    Color{R: 255, G: 255, B: 255, Bold: true},
	Argument: Color{R: 255, G: 255, B: 0},
}

// ThemeDark has a light blue prompt and off-white input.
var ThemeDark = &ColorScheme{
	Name:     "Dark",
	Prefix:   Color{R: 102, G: 217, B: 239, Bold: true},
	Input:    Color{R: 248, G: 248, B: 242},
	Argument: Color{R: 255, G: 184, B: 108},
}

// ThemeLight has a blue prompt and dark gray input.
var ThemeLight = &ColorScheme{
	Name:     "Light",
	Prefix:   Color{R: 0, G: 119, B: 187, Bold: true},
	Input:    Color{R: 36, G: 41, B: 46},
	Argument: Color{R: 215, G: 58, B: 73},
}

// ThemeAccessible is a colorblind-safe, high contrast scheme.
var ThemeAccessible = &ColorScheme{
	Name:     "Accessible",
	Prefix:   Color{R: 0, G: 114, B: 178, Bold: true},
	Input:    Color{R: 255, G: 255, B: 255},
	Argument: Color{R: 240, G: 228, B: 66, Bold: true},
}

// ThemeDracula is the Dracula color scheme.
var ThemeDracula = &ColorScheme{
	Name:     "Dracula",
	Prefix:   Color{R: 255, G: 121, B: 198, Bold: true},
	Input:    Color{R: 248, G: 248, B: 242},
	Argument: Color{R: 241, G: 250, B: 140, Bold: true},
}

// ThemeMonokai is the Monokai color scheme.
var ThemeMonokai = &ColorScheme{
	Name:     "Monokai",
	Prefix:   Color{R: 249, G: 38, B: 114, Bold: true},
	Input:    Color{R: 248, G: 248, B: 242},
	Argument: Color{R: 253, G: 151, B: 31, Bold: true},
}

// ToANSI returns the escape sequence that selects c.
func (c Color) ToANSI() string {
	codes := make([]string, 0, 2)
	if c.Bold {
		codes = append(codes, "1")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// Reset returns the escape sequence that clears all styles.
func Reset() string {
	return "\x1b[0m"
}

// LoadColorScheme reads a color scheme from a TOML file. Colors missing
// from the file are black.
//
//	name = "ocean"
//
//	[prefix]
//	r = 102
//	g = 217
//	b = 239
//	bold = true
func LoadColorScheme(path string) (*ColorScheme, error) {
	var scheme ColorScheme
	md, err := toml.DecodeFile(path, &scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to read color scheme %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return &scheme, nil
}
