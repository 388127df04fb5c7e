package readline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// calculateFuzzyScore calculates a fuzzy matching score between input and candidate.
// Returns 0 if no match, higher scores for better matches.
// Supports case-insensitive matching when ignoreCase is true.
func calculateFuzzyScore(input, candidate string, ignoreCase bool) int {
	if input == "" {
		return 1
	}
	if candidate == "" {
		return 0
	}

	if ignoreCase {
		input = strings.ToLower(input)
		candidate = strings.ToLower(candidate)
	}

	switch {
	case input == candidate:
		return 1000
	case strings.HasPrefix(candidate, input):
		return 800 + len(input)*10
	case strings.Contains(candidate, input):
		return 500 + len(input)*5
	}

	// Every input character must appear in order.
	score := 0
	rest := []rune(candidate)
	for _, r := range input {
		i := indexRune(rest, r)
		if i < 0 {
			return 0
		}
		score += 10
		rest = rest[i+1:]
	}
	return score
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}

type fuzzyCompleter struct {
	candidates []string
}

// NewFuzzyCompleter returns a completer that offers every candidate
// matching the word before the cursor, best match first.
//
// Matching is case-insensitive. Exact matches rank above prefix matches,
// which rank above substring matches and then in-order character matches.
// An empty word offers every candidate in the given order.
//
// Example:
//
//	r, _ := readline.New("$ ", readline.WithCompleter(
//		readline.NewFuzzyCompleter([]string{"status", "commit", "push", "pull"}),
//	))
func NewFuzzyCompleter(candidates []string) AutoCompleter {
	fc := &fuzzyCompleter{candidates: candidates}
	return NewCompleter(nil, fc.complete)
}

func (f *fuzzyCompleter) complete(text string, index int) []string {
	word := text[index:]
	if word == "" {
		return append([]string(nil), f.candidates...)
	}

	type match struct {
		text  string
		score int
	}
	var matches []match
	for _, candidate := range f.candidates {
		if score := calculateFuzzyScore(word, candidate, true); score > 0 {
			matches = append(matches, match{text: candidate, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.text
	}
	return out
}

// NewFileCompleter returns a completer for file and directory paths.
// Directories are suggested with a trailing slash.
func NewFileCompleter() AutoCompleter {
	return NewCompleter(nil, func(text string, index int) []string {
		return completeFilePath(text[index:])
	})
}

func completeFilePath(path string) []string {
	cut := strings.LastIndexAny(path, "/"+string(filepath.Separator))
	prefix, base := path[:cut+1], path[cut+1:]
	dir := prefix
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var out []string
	for _, entry := range entries {
		name := entry.Name()
		// Hidden files only when asked for.
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if !strings.HasPrefix(name, base) {
			continue
		}
		full := prefix + name
		if entry.IsDir() {
			full += "/"
		}
		out = append(out, full)
	}
	return out
}
