package main

import (
	"fmt"
	"os"

	"github.com/hausbib/hausbib/pkg/auth"
)

// Prints the bcrypt hash for a password so users can be seeded by hand:
//
//	go run ./cmd/scripts/hash-password 'hunter2'
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hash-password <password>")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
