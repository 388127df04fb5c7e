package readline

import "strings"

// historyNavigator walks a list of submitted lines. An index equal to the
// number of entries means the line being typed is shown.
type historyNavigator struct {
	entries []string
	index   int
}

func newHistoryNavigator(entries []string) historyNavigator {
	return historyNavigator{entries: entries, index: len(entries)}
}

// Previous steps to the older entry, if any.
func (h *historyNavigator) Previous() (string, bool) {
	if h.index == 0 {
		return "", false
	}
	h.index--
	return h.entries[h.index], true
}

// Next steps to the newer entry. Stepping past the newest entry returns
// current, the line that was being typed.
func (h *historyNavigator) Next(current string) (string, bool) {
	if h.index >= len(h.entries) {
		return "", false
	}
	h.index++
	if h.index == len(h.entries) {
		return current, true
	}
	return h.entries[h.index], true
}

// First jumps to the oldest entry.
func (h *historyNavigator) First() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	h.index = 0
	return h.entries[0], true
}

// ReturnToCurrent jumps back to the line being typed.
func (h *historyNavigator) ReturnToCurrent(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	h.index = len(h.entries)
	return current, true
}

// LastWord returns the last space separated word of the newest entry.
func (h *historyNavigator) LastWord() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	words := strings.Split(h.entries[len(h.entries)-1], " ")
	return words[len(words)-1], true
}
