// Package main demonstrates history management features of the readline library.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/readline"
)

func main() {
	fmt.Println("History Example with File Persistence")
	fmt.Println("Use Up/Down arrow keys to navigate history")
	fmt.Println("Use Alt+< and Alt+> to jump to the oldest entry and back")
	fmt.Println("Use Alt+. to insert the last word of the previous command")
	fmt.Println("Type 'history' to see command history")
	fmt.Println("Type 'clear' to clear history")
	fmt.Println("Type 'exit' or 'quit' to exit")
	fmt.Printf("History is automatically saved to %s\n", readline.DefaultHistoryFile())
	fmt.Println()

	// History is loaded from the file when the reader is created and saved
	// when it is closed. The path may be absolute, relative or start
	// with "~/".
	r, err := readline.New("history> ",
		readline.WithFileHistory(readline.DefaultHistoryFile(), 1000),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	for {
		result, err := r.Run()
		if err != nil {
			if errors.Is(err, readline.ErrEOF) {
				fmt.Println("Goodbye!")
				break
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		result = strings.TrimSpace(result)
		if result == "" {
			continue
		}

		switch result {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "history":
			fmt.Println("Command History:")
			for i, cmd := range r.GetHistory() {
				fmt.Printf("  %3d: %s\n", i+1, cmd)
			}
		case "clear":
			r.ClearHistory()
			fmt.Println("History cleared")
		default:
			// Submitted lines are added to the history by Run.
			fmt.Printf("Executed: %s\n", result)
		}
	}
}
