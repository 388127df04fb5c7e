package readline

// undoLog keeps a snapshot of the line after every completed edit.
type undoLog struct {
	snapshots []string
}

func (u *undoLog) Record(snapshot string) {
	u.snapshots = append(u.snapshots, snapshot)
}

func (u *undoLog) Len() int {
	return len(u.snapshots)
}

// Undo drops the newest snapshot and returns the text the line should go
// back to. ok is false when there is nothing to undo.
func (u *undoLog) Undo() (text string, ok bool) {
	n := len(u.snapshots)
	switch n {
	case 0:
		return "", false
	case 1:
		u.snapshots = u.snapshots[:0]
		return "", true
	}
	text = u.snapshots[n-2]
	u.snapshots = u.snapshots[:n-1]
	return text, true
}
