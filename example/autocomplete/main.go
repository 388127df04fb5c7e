// Package main demonstrates autocomplete functionality using only public APIs.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/readline"
)

var commands = []string{"help", "list", "create", "delete", "update", "status", "exit"}

// completeCommand offers commands for the first word and arguments that
// depend on the command for the words after it.
func completeCommand(text string, index int) []string {
	words := strings.Fields(text[:index])
	word := strings.ToLower(text[index:])

	var candidates []string
	if len(words) == 0 {
		candidates = commands
	} else {
		switch words[0] {
		case "delete", "update":
			candidates = []string{"item1", "item2", "item3"}
		case "create":
			candidates = []string{"project", "file", "folder"}
		}
	}

	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			out = append(out, c)
		}
	}
	return out
}

func main() {
	fmt.Println("Simple Autocomplete Example")
	fmt.Println("==========================")
	fmt.Println("Press Tab to complete, Tab again for the next candidate")
	fmt.Println("Press Shift+Tab to go back, Alt+* to insert every candidate")
	fmt.Println("Type 'help' to see available commands")
	fmt.Println("Type 'exit' to quit")
	fmt.Println()

	r, err := readline.New("app> ",
		readline.WithCompleter(readline.NewCompleter(nil, completeCommand)),
		readline.WithColorScheme(readline.ThemeDracula),
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

		args := strings.Fields(result)
		switch args[0] {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "help":
			fmt.Println("Available commands:")
			fmt.Println("  help    - Show this help")
			fmt.Println("  list    - List items")
			fmt.Println("  create  - Create new item")
			fmt.Println("  delete  - Delete item")
			fmt.Println("  update  - Update item")
			fmt.Println("  status  - Show status")
			fmt.Println("  exit    - Exit program")
		case "status":
			fmt.Println("Status: Running")
		case "list":
			fmt.Println("Items: item1, item2, item3")
		default:
			fmt.Printf("Executed: %s\n", result)
		}
	}
}
