package readline

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllKeys(t *testing.T, input string) []string {
	t.Helper()

	dec := newKeyDecoder(newMockTerminal(input))
	var got []string
	for {
		k, err := dec.ReadKey()
		if errors.Is(err, io.EOF) {
			return got
		}
		require.NoError(t, err)
		got = append(got, k.Descriptor())
	}
}

func TestKeyDecoder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain text", input: "ab", want: []string{"A", "B"}},
		{name: "arrows", input: "\x1b[A\x1b[B\x1b[C\x1b[D", want: []string{"UpArrow", "DownArrow", "RightArrow", "LeftArrow"}},
		{name: "ss3 arrows", input: "\x1bOA\x1bOH", want: []string{"UpArrow", "Home"}},
		{name: "home and end", input: "\x1b[H\x1b[F\x1b[1~\x1b[4~\x1b[7~\x1b[8~", want: []string{"Home", "End", "Home", "End", "Home", "End"}},
		{name: "delete", input: "\x1b[3~", want: []string{"Delete"}},
		{name: "shift tab", input: "\x1b[Z", want: []string{"Shift+Tab"}},
		{name: "ctrl arrows", input: "\x1b[1;5D\x1b[1;5C", want: []string{"Ctrl+LeftArrow", "Ctrl+RightArrow"}},
		{name: "alt shift arrow", input: "\x1b[1;4A", want: []string{"Alt+Shift+UpArrow"}},
		{name: "alt letters", input: "\x1bt\x1bF", want: []string{"Alt+T", "Alt+Shift+F"}},
		{name: "alt punctuation", input: "\x1b.\x1b<\x1b>\x1b*", want: []string{"Alt+OemPeriod", "Alt+Shift+OemComma", "Alt+Shift+OemPeriod", "Alt+Shift+D8"}},
		{name: "alt digits and minus", input: "\x1b1\x1b-", want: []string{"Alt+D1", "Alt+Subtract"}},
		{name: "alt tab and backspace", input: "\x1b\t\x1b\x7f", want: []string{"Alt+Tab", "Alt+Backspace"}},
		{name: "lone escape at end", input: "a\x1b", want: []string{"A", "Escape"}},
		{name: "control characters", input: "\x01\x17\x1f", want: []string{"Ctrl+A", "Ctrl+W", "Ctrl+Shift+OemMinus"}},
		{name: "unknown sequence", input: "\x1b[99~x", want: []string{"", "X"}},
		{name: "unknown final", input: "\x1b[5q", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, readAllKeys(t, tt.input))
		})
	}
}

func TestKeyDecoderTruncatedSequence(t *testing.T) {
	t.Parallel()

	dec := newKeyDecoder(newMockTerminal("\x1b[1;5"))
	_, err := dec.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}
