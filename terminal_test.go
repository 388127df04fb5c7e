package readline

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func TestMockTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "simple input", input: "hello"},
		{name: "empty input", input: ""},
		{name: "unicode input", input: "こんにちは"},
		{name: "escape sequences", input: "hello\r\nworld\x1b[A\x03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMockTerminal(tt.input)

			require.NoError(t, mock.SetRaw())
			assert.True(t, mock.rawMode, "Expected rawMode to be true after SetRaw()")

			w, h, err := mock.Size()
			require.NoError(t, err)
			assert.Equal(t, 80, w)
			assert.Equal(t, 24, h)

			for i, want := range []rune(tt.input) {
				assert.True(t, mock.Buffered(), "Expected input to be buffered at position %d", i)
				r, size, err := mock.ReadRune()
				require.NoError(t, err)
				assert.Equal(t, want, r, "position %d", i)
				assert.Equal(t, 1, size)
			}
			assert.False(t, mock.Buffered())

			_, _, err = mock.ReadRune()
			assert.ErrorIs(t, err, io.EOF, "Expected EOF after consuming all input")
			_, _, err = mock.ReadRune()
			assert.ErrorIs(t, err, io.EOF, "Expected EOF to repeat")

			require.NoError(t, mock.Restore())
			assert.False(t, mock.rawMode, "Expected rawMode to be false after Restore()")

			require.NoError(t, mock.Close())
			assert.Equal(t, 1, mock.closed)
		})
	}
}

func TestMockTerminalOutput(t *testing.T) {
	t.Parallel()

	mock := newMockTerminal("")
	_, err := io.WriteString(mock.Output(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "> ", mock.output.String())
}

func TestTerminalInterfaceCompliance(_ *testing.T) {
	var _ terminalInterface = &realTerminal{}
	var _ terminalInterface = &mockTerminal{}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, term.IsTerminal(-1), "Expected IsTerminal(-1) to return false")
}

func TestRealTerminalWithoutTTY(t *testing.T) {
	t.Parallel()

	terminal := &realTerminal{stdinFd: -1}

	assert.NoError(t, terminal.SetRaw(), "Expected SetRaw to do nothing without a terminal")
	assert.NoError(t, terminal.Restore())
	assert.NoError(t, terminal.Close(), "Close() with nil tty should not error")
	assert.False(t, terminal.closed, "Expected closed flag to remain false with nil tty")
}

func TestRealTerminal(t *testing.T) {
	if os.Getenv("GITHUB_ACTIONS") == "" {
		t.Skip("Skipping real terminal test in local development")
	}

	terminal, err := newRealTerminal()
	if err != nil {
		t.Skipf("Cannot create real terminal in this environment: %v", err)
	}

	for i := range 3 {
		if err := terminal.SetRaw(); err != nil {
			t.Logf("SetRaw() cycle %d failed: %v (may be expected in CI)", i, err)
			break
		}
		require.NoError(t, terminal.Restore(), "Restore() cycle %d", i)
	}

	width, height, err := terminal.Size()
	if err != nil {
		t.Logf("Size returned error (may be expected in CI): %v", err)
	}
	assert.Positive(t, width)
	assert.Positive(t, height)
	assert.NotNil(t, terminal.Output())

	// A second close must not fail or panic.
	require.NoError(t, terminal.Close())
	require.NoError(t, terminal.Close())
}
