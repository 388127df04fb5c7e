// Package readline provides an Emacs-style line editor for terminal programs.
//
// A Reader shows a prompt, lets the user edit one line with the usual GNU
// Readline keys and returns the line when Enter is pressed. Long lines wrap
// at the terminal width and the cursor stays on the right character while
// moving across wrapped rows.
//
// Key Features:
//
//   - Cursor movement, deletion and case commands by character and by word
//   - A kill buffer: consecutive kills of the same kind are merged and can be
//     yanked back with Ctrl+Y
//   - History navigation with Up/Down, Alt+< and Alt+>, stored in a file
//     with size based rotation
//   - Cycling completion with Tab and Shift+Tab
//   - Undo of every edit with Ctrl+_
//   - Numeric arguments: Alt+3 Backspace deletes three characters
//   - Custom key bindings in code or in a TOML file
//   - Masked or silent password input
//   - Context support for timeouts and cancellation
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/readline"
//	)
//
//	func main() {
//		r, err := readline.New("Enter command: ")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer r.Close()
//
//		line, err := r.Run()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("You entered: %s\n", line)
//	}
//
// Completion and History:
//
//	r, err := readline.New("$ ",
//		readline.WithCompleter(readline.NewFuzzyCompleter([]string{
//			"status", "commit", "push", "pull",
//		})),
//		readline.WithFileHistory("~/.myapp_history", 500),
//	)
//
// Tab replaces the word before the cursor with the first candidate; pressing
// Tab again cycles through the rest. Completion only runs with the cursor at
// the end of the line.
//
// Key Bindings:
//
//   - Enter, Ctrl+J: Submit the line
//   - Ctrl+C: Return ErrInterrupted
//   - Ctrl+D: Return ErrEOF on an empty line, delete a character otherwise
//   - Left/Right, Ctrl+B/Ctrl+F: Move by character
//   - Alt+B/Alt+F, Ctrl+Left/Right: Move by word
//   - Home/End, Ctrl+A/Ctrl+E: Move to the start or end of the line
//   - Backspace, Delete: Delete a character
//   - Escape, Ctrl+L: Clear the line
//   - Ctrl+U, Ctrl+K: Kill to the start or end of the line
//   - Ctrl+W, Alt+Backspace, Alt+D: Kill a word
//   - Ctrl+Y: Yank the kill buffer
//   - Up/Down, Ctrl+P/Ctrl+N: Browse history
//   - Alt+.: Insert the last word of the newest history entry
//   - Ctrl+T, Alt+T: Transpose characters or words
//   - Alt+U, Alt+L, Alt+C, Alt+V: Change case
//   - Alt+#: Comment out the line
//   - Alt+&: Expand "~" to the home directory
//   - Ctrl+_, Alt+R: Undo one edit, or all of them
//   - Alt+0 .. Alt+9, Alt+-: Enter a numeric argument
//
// Keys without a default binding can be bound to any operation or to a
// function:
//
//	kb := readline.NewKeyBindings()
//	kb.Add("Alt+Shift+F", readline.BindOperation(readline.OpBackwardDeleteOrDeleteChar))
//	kb.Add("Ctrl+O", readline.BindFunc(func(h *readline.KeyHandler) {
//		h.Insert(time.Now().Format(time.RFC3339))
//	}))
//
//	r, err := readline.New("$ ", readline.WithKeyBindings(kb))
//
// The same bindings can live in a TOML file loaded WithBindingsFile:
//
//	[bindings]
//	"Alt+Shift+F" = "backward-delete-or-delete-char"
//
// Error Handling:
//
//   - readline.ErrInterrupted: User pressed Ctrl+C
//   - readline.ErrEOF: User pressed Ctrl+D on an empty line, or input ended
//   - context.DeadlineExceeded, context.Canceled: The context passed to
//     RunWithContext or ReadPassword is done
//
// Thread Safety:
//
// A Reader must be used from one goroutine. Reads from different Readers
// are serialized through a process-wide lock unless WithForcedAccess is
// given. A read can be cancelled from another goroutine through its context.
//
// Always call Close when done with a Reader. It saves the history file and
// releases the terminal, and is safe to call more than once.
package readline
