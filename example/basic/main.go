// Package main demonstrates basic usage of the readline library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/readline"
)

func main() {
	// Create a reader with default settings
	r, err := readline.New(">>> ")
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	fmt.Println("Basic Readline Example")
	fmt.Println("Type 'exit' or 'quit' to exit")
	fmt.Println("Press Ctrl+D to exit")
	fmt.Println()

	for {
		result, err := r.Run()
		if err != nil {
			if errors.Is(err, readline.ErrEOF) {
				fmt.Println("Goodbye!")
				break
			}
			if errors.Is(err, readline.ErrInterrupted) {
				continue
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		// Handle exit commands
		if result == "exit" || result == "quit" {
			fmt.Println("Goodbye!")
			break
		}

		// Echo the input back
		fmt.Printf("You typed: %s\n", result)
	}
}
