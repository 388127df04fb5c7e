package readline

// killBuffer holds the text removed by the most recent run of kill
// operations of the same kind.
type killBuffer struct {
	text string
}

// Record stores killed text. A kill of a different kind than the previous
// operation starts over; a repeated kill extends the buffer, prepending
// when the text was killed backwards so it still reads left to right.
func (k *killBuffer) Record(killed string, op, previous Operation, backward bool) {
	if op != previous {
		k.text = ""
	}
	if backward {
		k.text = killed + k.text
		return
	}
	k.text += killed
}

func (k *killBuffer) Contents() string {
	return k.text
}

func (k *killBuffer) Empty() bool {
	return k.text == ""
}
