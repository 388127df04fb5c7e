// Package main demonstrates password input with the readline library.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nao1215/readline"
)

func main() {
	fmt.Println("Password Example")
	fmt.Println("The password is masked with '*'; the confirmation is not echoed at all")
	fmt.Println("You have 30 seconds for each entry")
	fmt.Println()

	r, err := readline.New("Password: ")
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	first, err := readPassword(r, '*')
	if err != nil {
		log.Fatal(err)
	}

	r.SetPrefix("Confirm: ")
	second, err := readPassword(r, 0)
	if err != nil {
		log.Fatal(err)
	}

	if first != second {
		fmt.Println("Passwords do not match")
		return
	}
	fmt.Printf("Password accepted (%d characters)\n", len([]rune(first)))
}

func readPassword(r *readline.Reader, mask rune) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	password, err := r.ReadPassword(ctx, mask)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "", errors.New("timed out waiting for the password")
	case errors.Is(err, readline.ErrInterrupted), errors.Is(err, readline.ErrEOF):
		return "", errors.New("cancelled")
	case err != nil:
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}
