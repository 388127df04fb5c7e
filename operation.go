package readline

import (
	"fmt"
	"strings"
)

// Operation identifies an editing command. Operations are compared by
// value, so the handler can tell whether two keys in a row ran the same
// command.
type Operation int

// Editing operations. The names returned by String follow GNU Readline
// where an equivalent command exists.
const (
	OpNone Operation = iota
	OpSelfInsert
	OpBackwardChar
	OpForwardChar
	OpBackwardWord
	OpForwardWord
	OpBeginningOfLine
	OpEndOfLine
	OpBackwardDeleteChar
	OpDeleteChar
	OpBackwardDeleteOrDeleteChar
	OpClearLine
	OpUnixLineDiscard
	OpKillLine
	OpUnixWordRubout
	OpKillWord
	OpDeleteHorizontalSpace
	OpPreviousHistory
	OpNextHistory
	OpBeginningOfHistory
	OpEndOfHistory
	OpYankLastArg
	OpTransposeChars
	OpTransposeWords
	OpComplete
	OpMenuCompleteBackward
	OpInsertCompletions
	OpDowncaseWord
	OpUpcaseWord
	OpDowncaseChar
	OpCapitalizeChar
	OpYank
	OpInsertComment
	OpTildeExpand
	OpTabInsert
	OpUndo
	OpRevertLine
	OpDigitArgument
	OpNegativeArgument
	OpCustom
)

var operationNames = [...]string{
	OpNone:                       "none",
	OpSelfInsert:                 "self-insert",
	OpBackwardChar:               "backward-char",
	OpForwardChar:                "forward-char",
	OpBackwardWord:               "backward-word",
	OpForwardWord:                "forward-word",
	OpBeginningOfLine:            "beginning-of-line",
	OpEndOfLine:                  "end-of-line",
	OpBackwardDeleteChar:         "backward-delete-char",
	OpDeleteChar:                 "delete-char",
	OpBackwardDeleteOrDeleteChar: "backward-delete-or-delete-char",
	OpClearLine:                  "clear-line",
	OpUnixLineDiscard:            "unix-line-discard",
	OpKillLine:                   "kill-line",
	OpUnixWordRubout:             "unix-word-rubout",
	OpKillWord:                   "kill-word",
	OpDeleteHorizontalSpace:      "delete-horizontal-space",
	OpPreviousHistory:            "previous-history",
	OpNextHistory:                "next-history",
	OpBeginningOfHistory:         "beginning-of-history",
	OpEndOfHistory:               "end-of-history",
	OpYankLastArg:                "yank-last-arg",
	OpTransposeChars:             "transpose-chars",
	OpTransposeWords:             "transpose-words",
	OpComplete:                   "complete",
	OpMenuCompleteBackward:       "menu-complete-backward",
	OpInsertCompletions:          "insert-completions",
	OpDowncaseWord:               "downcase-word",
	OpUpcaseWord:                 "upcase-word",
	OpDowncaseChar:               "downcase-char",
	OpCapitalizeChar:             "capitalize-char",
	OpYank:                       "yank",
	OpInsertComment:              "insert-comment",
	OpTildeExpand:                "tilde-expand",
	OpTabInsert:                  "tab-insert",
	OpUndo:                       "undo",
	OpRevertLine:                 "revert-line",
	OpDigitArgument:              "digit-argument",
	OpNegativeArgument:           "negative-argument",
	OpCustom:                     "custom",
}

func (o Operation) String() string {
	if o >= 0 && int(o) < len(operationNames) {
		return operationNames[o]
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// ParseOperation looks up an operation by its name. Operations that need
// data or code to run, digit-argument and custom, cannot be named.
func ParseOperation(name string) (Operation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for op, n := range operationNames {
		if n != name {
			continue
		}
		switch Operation(op) {
		case OpNone, OpDigitArgument, OpCustom:
			return OpNone, fmt.Errorf("%w: %q cannot be bound by name", ErrUnknownOperation, name)
		}
		return Operation(op), nil
	}
	return OpNone, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// isArgument reports whether op is part of entering a repeat count.
func (o Operation) isArgument() bool {
	return o == OpDigitArgument || o == OpNegativeArgument
}
