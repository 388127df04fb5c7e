package readline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCompleter(t *testing.T) {
	t.Parallel()

	t.Run("space is the default separator", func(t *testing.T) {
		t.Parallel()

		c := NewCompleter(nil, nil)
		assert.Equal(t, []rune{' '}, c.Separators())
		assert.Nil(t, c.Suggestions("git ", 4), "Expected no suggestions without a function")
	})

	t.Run("custom separators", func(t *testing.T) {
		t.Parallel()

		var gotText string
		var gotIndex int
		c := NewCompleter([]rune{' ', '/'}, func(text string, index int) []string {
			gotText, gotIndex = text, index
			return []string{"bin"}
		})

		assert.Equal(t, []rune{' ', '/'}, c.Separators())
		assert.Equal(t, []string{"bin"}, c.Suggestions("ls /b", 4))
		assert.Equal(t, "ls /b", gotText)
		assert.Equal(t, 4, gotIndex)
	})
}

func TestCompletionStateCycles(t *testing.T) {
	t.Parallel()

	var c completionState
	assert.False(t, c.Active())

	c.Start([]string{"World", "Angel", "Love"}, 3)
	assert.True(t, c.Active())
	assert.Equal(t, 3, c.start)
	assert.Equal(t, "World", c.Current())

	assert.Equal(t, "Angel", c.Next())
	assert.Equal(t, "Love", c.Next())
	assert.Equal(t, "World", c.Next(), "Expected Next to wrap to the first candidate")

	assert.Equal(t, "Love", c.Previous(), "Expected Previous to wrap to the last candidate")
	assert.Equal(t, "Angel", c.Previous())

	c.Reset()
	assert.False(t, c.Active())
	assert.Equal(t, 0, c.start)
}

func TestCompletionStateSingleCandidate(t *testing.T) {
	t.Parallel()

	var c completionState
	c.Start([]string{"only"}, 0)
	assert.Equal(t, "only", c.Next())
	assert.Equal(t, "only", c.Previous())
}
