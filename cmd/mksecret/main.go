package main

import (
	"fmt"
	"syscall"

	"github.com/pzl/rwt/internal/secret"
	"golang.org/x/crypto/ssh/terminal"
)

// derives a signing secret from a passphrase+salt. Both sides of a token
// exchange can run this independently and end up with the same secret.
func main() {
	fmt.Print("Enter passphrase: ")
	pass, err := terminal.ReadPassword(int(syscall.Stdin))
	if err != nil {
		panic(err)
	}
	fmt.Print("\nEnter salt: ")
	salt, err := terminal.ReadPassword(int(syscall.Stdin))
	if err != nil {
		panic(err)
	}
	key := secret.Derive(pass, salt)

	fmt.Printf("\n%x\n", key)
}
