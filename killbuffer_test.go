package readline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordedKill struct {
	text     string
	op       Operation
	backward bool
}

func TestKillBufferRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kills []recordedKill
		want  string
	}{
		{
			name:  "single kill",
			kills: []recordedKill{{"World", OpUnixWordRubout, true}},
			want:  "World",
		},
		{
			name:  "repeated backward kills prepend",
			kills: []recordedKill{{"three", OpUnixWordRubout, true}, {"two ", OpUnixWordRubout, true}},
			want:  "two three",
		},
		{
			name:  "repeated forward kills append",
			kills: []recordedKill{{"one", OpKillWord, false}, {" two", OpKillWord, false}},
			want:  "one two",
		},
		{
			name:  "different kill starts over",
			kills: []recordedKill{{"one", OpKillWord, false}, {"rest", OpKillLine, false}},
			want:  "rest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var kb killBuffer
			previous := OpNone
			for _, k := range tt.kills {
				kb.Record(k.text, k.op, previous, k.backward)
				previous = k.op
			}
			assert.Equal(t, tt.want, kb.Contents())
			assert.False(t, kb.Empty())
		})
	}
}

func TestKillBufferEmpty(t *testing.T) {
	t.Parallel()

	var kb killBuffer
	assert.True(t, kb.Empty())
	kb.Record("", OpKillLine, OpNone, false)
	assert.True(t, kb.Empty())
}
