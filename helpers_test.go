package readline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFuzzyScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		candidate  string
		ignoreCase bool
		want       int
	}{
		{name: "empty input matches", input: "", candidate: "git", want: 1},
		{name: "empty candidate", input: "g", candidate: "", want: 0},
		{name: "exact", input: "git", candidate: "git", want: 1000},
		{name: "exact ignoring case", input: "GIT", candidate: "git", ignoreCase: true, want: 1000},
		{name: "case sensitive mismatch", input: "Git", candidate: "git", want: 0},
		{name: "prefix", input: "gi", candidate: "git", want: 820},
		{name: "substring", input: "it", candidate: "git", want: 510},
		{name: "in order", input: "gt", candidate: "git", want: 20},
		{name: "out of order", input: "tg", candidate: "git", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, calculateFuzzyScore(tt.input, tt.candidate, tt.ignoreCase))
		})
	}
}

func TestFuzzyCompleter(t *testing.T) {
	t.Parallel()

	c := NewFuzzyCompleter([]string{"apple", "application", "grape", "pineapple"})
	assert.Equal(t, []rune{' '}, c.Separators())

	tests := []struct {
		name  string
		text  string
		index int
		want  []string
	}{
		{name: "empty word offers everything", text: "eat ", index: 4, want: []string{"apple", "application", "grape", "pineapple"}},
		{name: "prefix ranks first", text: "eat ap", index: 4, want: []string{"apple", "application", "grape", "pineapple"}},
		{name: "in order characters", text: "eat apl", index: 4, want: []string{"apple", "application", "pineapple"}},
		{name: "exact ranks above prefix", text: "APPLE", index: 0, want: []string{"apple", "pineapple"}},
		{name: "no match", text: "eat xyz", index: 4, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.Suggestions(tt.text, tt.index))
		})
	}
}

func TestFileCompleter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.txt"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beta.txt"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "alps"), 0o750))

	c := NewFileCompleter()

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()

		text := "cat " + dir + "/al"
		assert.Equal(t, []string{dir + "/alpha.txt", dir + "/alps/"}, c.Suggestions(text, 4))
	})

	t.Run("hidden files are skipped", func(t *testing.T) {
		t.Parallel()

		got := c.Suggestions(dir+"/", 0)
		assert.Equal(t, []string{dir + "/alpha.txt", dir + "/alps/", dir + "/beta.txt"}, got)
	})

	t.Run("hidden files when asked for", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{dir + "/.hidden"}, c.Suggestions(dir+"/.", 0))
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, c.Suggestions(filepath.Join(dir, "nope")+"/x", 0))
	})
}
