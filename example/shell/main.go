// Package main provides a shell-like file explorer example using the readline library.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/nao1215/readline"
)

// idleTimeout ends the shell when no command is entered for this long.
const idleTimeout = 10 * time.Minute

func main() {
	fmt.Println("Shell-like File Explorer Example")
	fmt.Println("================================")
	fmt.Println("Commands:")
	fmt.Println("  ls [path]    - List directory contents")
	fmt.Println("  cd [path]    - Change directory")
	fmt.Println("  cat [file]   - Show file contents")
	fmt.Println("  pwd          - Show current directory")
	fmt.Println("  exit/quit    - Exit")
	fmt.Println()
	fmt.Println("Use Tab for command and file completion")
	fmt.Println("Use Ctrl+O to insert the current directory")
	fmt.Println("Use Alt+Shift+F to delete backward at the end of the line, forward elsewhere")
	fmt.Println()

	kb := readline.NewKeyBindings()
	if err := kb.Add("Ctrl+O", readline.BindFunc(func(h *readline.KeyHandler) {
		if cwd, err := os.Getwd(); err == nil {
			h.Insert(cwd)
		}
	})); err != nil {
		log.Fatalf("failed to bind key: %v", err)
	}
	if err := kb.Add("Alt+Shift+F", readline.BindOperation(readline.OpBackwardDeleteOrDeleteChar)); err != nil {
		log.Fatalf("failed to bind key: %v", err)
	}

	options := []readline.Option{
		readline.WithCompleter(readline.NewCompleter([]rune{' '}, completeShell)),
		readline.WithMemoryHistory(1000),
		readline.WithKeyBindings(kb),
	}
	// More bindings and colors can be supplied as TOML files.
	if path := os.Getenv("SHELL_EXAMPLE_BINDINGS"); path != "" {
		options = append(options, readline.WithBindingsFile(path))
	}
	if path := os.Getenv("SHELL_EXAMPLE_COLORS"); path != "" {
		scheme, err := readline.LoadColorScheme(path)
		if err != nil {
			log.Fatalf("failed to load colors: %v", err)
		}
		options = append(options, readline.WithColorScheme(scheme))
	}

	r, err := readline.New("shell> ", options...)
	if err != nil {
		log.Fatalf("failed to create reader: %v", err)
	}
	defer r.Close()

	for {
		// Update prompt with current directory
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "unknown"
		}
		r.SetPrefix(fmt.Sprintf("shell:%s> ", filepath.Base(cwd)))

		result, err := readCommand(r)
		if errors.Is(err, readline.ErrInterrupted) {
			continue
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			break
		}

		result = strings.TrimSpace(result)

		// Handle exit commands
		if result == "exit" || result == "quit" {
			fmt.Println("Goodbye!")
			break
		}

		if result == "" {
			continue
		}

		// Parse and execute command
		executeCommand(result)
		fmt.Println()
	}
}

func readCommand(r *readline.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), idleTimeout)
	defer cancel()
	return r.RunWithContext(ctx)
}

var shellCommands = []string{"ls", "cd", "cat", "pwd", "exit"}

var fileCompleter = readline.NewFileCompleter()

// completeShell completes command names in the first word and paths in
// the arguments of ls, cd and cat.
func completeShell(text string, index int) []string {
	words := strings.Fields(text[:index])
	if len(words) == 0 {
		var out []string
		for _, c := range shellCommands {
			if strings.HasPrefix(c, text[index:]) {
				out = append(out, c)
			}
		}
		return out
	}

	switch words[0] {
	case "ls", "cd", "cat":
		return fileCompleter.Suggestions(text, index)
	}
	return nil
}

func executeCommand(input string) {
	words := strings.Fields(input)
	if len(words) == 0 {
		return
	}

	cmd := words[0]
	args := words[1:]

	switch cmd {
	case "pwd":
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Println(cwd)
		}

	case "ls":
		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Contents of %s:\n", path)
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				fmt.Printf("  %s/\n", name)
			} else {
				fmt.Printf("  %s\n", name)
			}
		}

	case "cd":
		if len(args) == 0 {
			fmt.Println("Error: cd requires a directory argument")
			return
		}

		err := os.Chdir(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			cwd, err := os.Getwd()
			if err != nil {
				cwd = "unknown"
			}
			fmt.Printf("Changed to: %s\n", cwd)
		}

	case "cat":
		if len(args) == 0 {
			fmt.Println("Error: cat requires a file argument")
			return
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Limit output for large files
		if len(content) > 1000 {
			fmt.Printf("File content (first 1000 bytes):\n%s\n... (truncated)\n", content[:1000])
		} else {
			fmt.Printf("File content:\n%s\n", content)
		}

	default:
		// Try to execute as external command
		// #nosec G204 - This is an example program that intentionally executes user input
		execCmd := exec.CommandContext(context.Background(), cmd, args...)
		output, err := execCmd.CombinedOutput()
		if err != nil {
			fmt.Printf("Error executing '%s': %v\n", cmd, err)
		} else {
			fmt.Print(string(output))
		}
	}
}
