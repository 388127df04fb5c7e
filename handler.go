package readline

import (
	"strings"
	"unicode"
)

// HandlerConfig configures a KeyHandler.
type HandlerConfig struct {
	// History is the list of previously submitted lines, oldest first.
	// The handler keeps its own copy.
	History []string
	// Completer supplies completions; nil disables them.
	Completer AutoCompleter
	// Bindings are looked up before the default key map.
	Bindings *KeyBindings
	// HomeDir returns the directory "~" expands to.
	HomeDir func() string
	// Prompt is the prompt that was written just before the handler was
	// created. It is needed to redraw the prompt line.
	Prompt string
	// WritePrompt draws a prompt at the cursor. Defaults to Console.WriteRaw.
	WritePrompt func(prompt string)

	DisableAutoCompletion bool
	DisableKillBuffer     bool
	DisableUndo           bool
}

// KeyHandler edits one line of input, one key at a time.
//
// Each call to Handle looks the key up in the custom bindings, then in the
// default key map, and runs the bound operation; keys bound to nothing
// insert their character. The handler owns every piece of editing state
// for the line:
//   - the text and cursor, mirrored onto the Console as they change
//   - the kill buffer, where consecutive kills of the same kind merge
//   - a private copy of the history and the line typed before browsing it
//   - the undo log, one snapshot per edit
//   - the completion candidates being cycled through
//   - the numeric argument being typed, shown as "(arg: N)" in place of
//     the prompt
//
// The handler never fails. Edits that cannot apply, such as moving past
// the end of the line or undoing with nothing recorded, do nothing.
//
// A Reader creates a new KeyHandler for every line. It is not safe for
// concurrent use.
type KeyHandler struct {
	console    Console
	buf        *lineBuffer
	kills      killBuffer
	history    historyNavigator
	undo       undoLog
	completion completionState
	arg        argumentPrefix

	bindings    *KeyBindings
	completer   AutoCompleter
	homeDir     func() string
	writePrompt func(string)

	prompt     string
	shown      string
	promptLeft int
	promptTop  int

	currentLine string
	key         Key
	lastOp      Operation

	// keepCurrentLine stops buffer changes from being copied into
	// currentLine; skipUndo stops them from being recorded for undo.
	keepCurrentLine bool
	skipUndo        bool

	autoCompletion bool
	killEnabled    bool
	undoEnabled    bool
}

// NewKeyHandler returns a handler editing an empty line on console.
func NewKeyHandler(console Console, config HandlerConfig) *KeyHandler {
	h := &KeyHandler{
		console:        console,
		buf:            newLineBuffer(console),
		history:        newHistoryNavigator(append([]string(nil), config.History...)),
		bindings:       config.Bindings,
		completer:      config.Completer,
		homeDir:        config.HomeDir,
		writePrompt:    config.WritePrompt,
		prompt:         config.Prompt,
		shown:          config.Prompt,
		autoCompletion: !config.DisableAutoCompletion,
		killEnabled:    !config.DisableKillBuffer,
		undoEnabled:    !config.DisableUndo,
	}
	if h.writePrompt == nil {
		h.writePrompt = console.WriteRaw
	}
	if h.homeDir == nil {
		h.homeDir = func() string { return "" }
	}
	h.buf.onChange = h.lineChanged

	// Work out where the prompt starts from where it ended.
	width := max(console.BufferWidth(), 1)
	h.promptLeft = console.CursorLeft() - len([]rune(config.Prompt))
	h.promptTop = console.CursorTop()
	for h.promptLeft < 0 {
		h.promptLeft += width
		h.promptTop--
	}
	return h
}

// Text returns the line as it is now.
func (h *KeyHandler) Text() string {
	return h.buf.Text()
}

// Pos returns the cursor position in characters.
func (h *KeyHandler) Pos() int {
	return h.buf.Pos()
}

// CurrentLine returns the line the user has typed, which differs from Text
// while a history entry is shown.
func (h *KeyHandler) CurrentLine() string {
	return h.currentLine
}

// KillBuffer returns the text that Yank would insert.
func (h *KeyHandler) KillBuffer() string {
	return h.kills.Contents()
}

// Insert writes text at the cursor. It is meant for custom bindings.
func (h *KeyHandler) Insert(text string) {
	h.buf.Insert(text, 1)
}

// SetAutoCompletion turns completion on or off. When off, the completion
// keys insert their character.
func (h *KeyHandler) SetAutoCompletion(on bool) { h.autoCompletion = on }

// SetKillBuffer turns the kill buffer on or off. When off, kills still
// delete text but nothing can be yanked.
func (h *KeyHandler) SetKillBuffer(on bool) { h.killEnabled = on }

// SetUndo turns undo on or off. When off, the undo keys insert their character.
func (h *KeyHandler) SetUndo(on bool) { h.undoEnabled = on }

// Handle runs the command bound to key.
func (h *KeyHandler) Handle(key Key) {
	h.key = key
	b, ok := h.bindings.Lookup(key)
	if !ok {
		b = BindOperation(OpSelfInsert)
	}
	if h.completion.Active() && b.Op != OpComplete && b.Op != OpMenuCompleteBackward {
		h.completion.Reset()
	}

	if h.arg.Entering() && !b.Op.isArgument() {
		count := h.arg.Count()
		h.endArgument()
		// All repetitions make one edit.
		h.buf.begin()
		for range count {
			h.run(b)
			h.lastOp = b.Op
		}
		h.buf.end()
	} else {
		h.run(b)
	}

	h.lastOp = b.Op
	h.keepCurrentLine = false
	h.skipUndo = false
}

// run executes one invocation of a binding. Buffer changes made during it
// count as a single edit.
func (h *KeyHandler) run(b Binding) {
	h.buf.begin()
	defer h.buf.end()

	if b.Func != nil {
		b.Func(h)
		return
	}

	switch b.Op {
	case OpSelfInsert:
		h.selfInsert()
	case OpTabInsert:
		h.buf.insertRune('\t')

	case OpBackwardChar:
		h.buf.MoveLeft(1)
	case OpForwardChar:
		h.buf.MoveRight(1)
	case OpBackwardWord:
		h.buf.MoveWordLeft()
	case OpForwardWord:
		h.buf.MoveWordRight()
	case OpBeginningOfLine:
		h.buf.MoveToStart()
	case OpEndOfLine:
		h.buf.MoveToEnd()

	case OpBackwardDeleteChar:
		h.buf.DeleteBackward(1)
	case OpDeleteChar:
		h.buf.DeleteForward(1)
	case OpBackwardDeleteOrDeleteChar:
		if h.buf.AtEnd() {
			h.buf.DeleteBackward(1)
		} else {
			h.buf.DeleteForward(1)
		}
	case OpClearLine:
		h.buf.Clear()
	case OpDeleteHorizontalSpace:
		h.buf.DeleteHorizontalSpace()

	case OpUnixLineDiscard:
		h.recordKill(b.Op, h.buf.KillToStart(), true)
	case OpKillLine:
		h.recordKill(b.Op, h.buf.KillToEnd(), false)
	case OpUnixWordRubout:
		h.recordKill(b.Op, h.buf.KillWordBackward(), true)
	case OpKillWord:
		h.recordKill(b.Op, h.buf.KillWordForward(), false)
	case OpYank:
		if !h.killEnabled {
			h.selfInsert()
		} else if !h.kills.Empty() {
			h.buf.Insert(h.kills.Contents(), 1)
		}

	case OpPreviousHistory:
		h.browseHistory(h.history.Previous())
	case OpNextHistory:
		h.browseHistory(h.history.Next(h.currentLine))
	case OpBeginningOfHistory:
		h.browseHistory(h.history.First())
	case OpEndOfHistory:
		h.browseHistory(h.history.ReturnToCurrent(h.currentLine))
	case OpYankLastArg:
		if word, ok := h.history.LastWord(); ok {
			h.buf.Insert(word, 1)
		}

	case OpTransposeChars:
		h.buf.TransposeChars()
	case OpTransposeWords:
		h.buf.TransposeWords()

	case OpComplete:
		h.complete()
	case OpMenuCompleteBackward:
		h.completeBackward()
	case OpInsertCompletions:
		h.insertCompletions()

	case OpDowncaseWord:
		h.buf.LowercaseWord()
	case OpUpcaseWord:
		h.buf.UppercaseWord()
	case OpDowncaseChar:
		h.buf.LowercaseCharMoveToEndOfWord()
	case OpCapitalizeChar:
		h.buf.UppercaseCharMoveToEndOfWord()

	case OpInsertComment:
		h.buf.InsertComment()
	case OpTildeExpand:
		h.buf.InsertHomeDirectory(h.homeDir())

	case OpUndo:
		if !h.undoEnabled {
			h.selfInsert()
			return
		}
		h.skipUndo = true
		h.undoOnce()
	case OpRevertLine:
		if !h.undoEnabled {
			h.selfInsert()
			return
		}
		h.skipUndo = true
		for h.undo.Len() > 0 {
			h.undoOnce()
		}

	case OpDigitArgument:
		h.arg.AddDigit(b.Arg)
		h.showPrompt(h.arg.Indicator())
	case OpNegativeArgument:
		if h.arg.HasDigits() {
			// A minus after digits is just a minus.
			h.endArgument()
			h.buf.insertRune('-')
			return
		}
		h.arg.StartNegative()
		h.showPrompt(h.arg.Indicator())
	}
}

// selfInsert writes the character of the current key. Control characters
// other than tab are dropped.
func (h *KeyHandler) selfInsert() {
	r := h.key.Char
	if r == '\t' || unicode.IsPrint(r) {
		h.buf.insertRune(r)
	}
}

func (h *KeyHandler) recordKill(op Operation, killed string, backward bool) {
	if h.killEnabled {
		h.kills.Record(killed, op, h.lastOp, backward)
	}
}

// browseHistory shows a history entry without touching the typed line or
// the undo log.
func (h *KeyHandler) browseHistory(text string, ok bool) {
	h.keepCurrentLine = true
	h.skipUndo = true
	if ok {
		h.buf.ReplaceAll(text)
	}
}

func (h *KeyHandler) undoOnce() {
	if text, ok := h.undo.Undo(); ok {
		h.buf.ReplaceAll(text)
	}
}

// lineChanged runs after every edit of the buffer.
func (h *KeyHandler) lineChanged() {
	if h.keepCurrentLine {
		return
	}
	h.currentLine = h.buf.Text()
	if !h.skipUndo {
		h.undo.Record(h.currentLine)
	}
}

func (h *KeyHandler) complete() {
	if !h.autoCompletion {
		h.selfInsert()
		return
	}
	if h.completion.Active() {
		h.replaceCompletion(h.completion.Next())
		return
	}
	candidates, start := h.lookupCompletions()
	if len(candidates) == 0 {
		return
	}
	h.completion.Start(candidates, start)
	h.replaceCompletion(h.completion.Current())
}

func (h *KeyHandler) completeBackward() {
	if !h.autoCompletion {
		h.selfInsert()
		return
	}
	if h.completion.Active() {
		h.replaceCompletion(h.completion.Previous())
	}
}

// insertCompletions writes every candidate after the cursor.
func (h *KeyHandler) insertCompletions() {
	if !h.autoCompletion {
		h.selfInsert()
		return
	}
	candidates, _ := h.lookupCompletions()
	if len(candidates) > 0 {
		h.buf.Insert(strings.Join(candidates, " "), 1)
	}
	h.completion.Reset()
}

// lookupCompletions asks the completer for candidates for the word that
// ends at the cursor. Completion only happens at the end of the line.
func (h *KeyHandler) lookupCompletions() (candidates []string, start int) {
	if h.completer == nil || !h.buf.AtEnd() {
		return nil, 0
	}
	start = lastIndexAny(h.buf.text, h.buf.Pos(), h.completer.Separators()) + 1
	text := h.buf.Text()
	offset := len(string(h.buf.text[:start]))
	return h.completer.Suggestions(text, offset), start
}

func (h *KeyHandler) replaceCompletion(candidate string) {
	h.buf.DeleteBackward(h.buf.Pos() - h.completion.start)
	h.buf.Insert(candidate, 1)
}

// endArgument stops argument entry and brings the real prompt back.
func (h *KeyHandler) endArgument() {
	h.arg.Reset()
	h.showPrompt(h.prompt)
}

// showPrompt replaces the prompt in front of the line and redraws the line.
func (h *KeyHandler) showPrompt(prompt string) {
	if prompt == h.shown || h.console.PasswordMode() {
		return
	}
	pos := h.buf.Pos()
	h.buf.MoveToStart()
	h.console.SetCursorPosition(h.promptLeft, h.promptTop)
	h.console.WriteRaw(strings.Repeat(" ", len([]rune(h.shown))+h.buf.Len()))
	h.console.SetCursorPosition(h.promptLeft, h.promptTop)
	h.writePrompt(prompt)
	h.shown = prompt
	h.buf.Redraw()
	h.buf.MoveRight(pos)
}

// finish ends any pending argument entry and moves the cursor past the
// line, ready for the caller to print a newline.
func (h *KeyHandler) finish() {
	if h.arg.Entering() {
		h.endArgument()
	}
	h.completion.Reset()
	h.buf.MoveToEnd()
}
