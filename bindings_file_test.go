package readline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyBindings(t *testing.T) {
	t.Parallel()

	kb, err := ParseKeyBindings(`
[bindings]
"Alt+Shift+F" = "backward-delete-or-delete-char"
"ctrl+o" = "Kill-Word"
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alt+Shift+F", "Ctrl+O"}, kb.Descriptors())

	b, ok := kb.Lookup(KeyFromRune(0x0f))
	require.True(t, ok)
	assert.Equal(t, OpKillWord, b.Op)
}

func TestParseKeyBindingsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "unknown operation", data: "[bindings]\n\"Ctrl+O\" = \"fly\"\n", wantErr: ErrUnknownOperation},
		{name: "operation needs data", data: "[bindings]\n\"Ctrl+O\" = \"digit-argument\"\n", wantErr: ErrUnknownOperation},
		{name: "default key", data: "[bindings]\n\"Ctrl+W\" = \"kill-word\"\n", wantErr: ErrBaseBinding},
		{name: "same key twice", data: "[bindings]\n\"Ctrl+O\" = \"kill-word\"\n\"control+o\" = \"kill-line\"\n", wantErr: ErrBindingExists},
		{name: "bad descriptor", data: "[bindings]\n\"Hyper+O\" = \"kill-word\"\n"},
		{name: "bad toml", data: "[bindings\n"},
		{name: "unknown table", data: "[bindings]\n\"Ctrl+O\" = \"kill-word\"\n[other]\nx = 1\n"},
		{name: "misspelled table", data: "[bindngs]\n\"Ctrl+O\" = \"kill-word\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseKeyBindings(tt.data)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadKeyBindings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "keys.toml")
		require.NoError(t, os.WriteFile(path, []byte("[bindings]\n\"Alt+Shift+F\" = \"backward-delete-or-delete-char\"\n"), 0o600))

		kb, err := LoadKeyBindings(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alt+Shift+F"}, kb.Descriptors())
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "empty.toml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		kb, err := LoadKeyBindings(path)
		require.NoError(t, err)
		assert.Empty(t, kb.Descriptors())
	})

	t.Run("unknown table", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "typo.toml")
		require.NoError(t, os.WriteFile(path, []byte("[bindngs]\n\"Ctrl+O\" = \"kill-word\"\n"), 0o600))

		_, err := LoadKeyBindings(path)
		assert.ErrorContains(t, err, "bindngs")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadKeyBindings(filepath.Join(dir, "nope.toml"))
		assert.Error(t, err)
	})
}
