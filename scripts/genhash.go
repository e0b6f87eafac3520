//go:build ignore

// genhash prints bcrypt hashes for seeding accounts by hand:
//
//	go run scripts/genhash.go <password> [password...]
package main

import (
	"fmt"
	"os"

	"recruitment-api/pkg/auth"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/genhash.go <password> [password...]")
		os.Exit(2)
	}

	hasher := auth.NewBcryptHasher(10)
	for _, pass := range os.Args[1:] {
		hash, err := hasher.Hash(pass)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, hash)
	}
}
