package readline

import (
	"bytes"
	"io"
)

// mockTerminal replays a fixed input and records the output. Reading past
// the end of the input returns io.EOF.
type mockTerminal struct {
	input    []rune
	inputPos int
	rawMode  bool
	width    int
	height   int
	output   bytes.Buffer
	closed   int
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:  []rune(input),
		width:  80,
		height: 24,
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.width, m.height, nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Buffered() bool {
	return m.inputPos < len(m.input)
}

func (m *mockTerminal) Output() io.Writer {
	return &m.output
}

func (m *mockTerminal) Close() error {
	m.closed++
	return nil
}
