// genhash prints the bcrypt hash stored in usuarios.password_hash.
// Usage: go run ./cmd/genhash <password>
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Same cost the auth service uses at registration.
const cost = 12

func main() {
	if len(os.Args) != 2 || len(os.Args[1]) < 8 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password (min 8 chars)>")
		os.Exit(2)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(h))
}
