package secret

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/argon2"
)

// KeyLength is the size in bytes of derived and generated signing secrets.
const KeyLength = 32

// argon2id cost parameters
const (
	passes  = 1
	memory  = 64 * 1024
	threads = 4
)

// Derive stretches a human passphrase and salt into a fixed-length signing
// secret. Deterministic: the same passphrase and salt always give the same
// secret, so issuer and verifier can derive it independently.
func Derive(pass []byte, salt []byte) []byte {
	return argon2.IDKey(pass, salt, passes, memory, threads, KeyLength)
}

// Random returns n bytes from the system CSPRNG, for ephemeral secrets.
func Random(n int) ([]byte, error) {
	b := make([]byte, n)
	m, err := io.ReadFull(rand.Reader, b)
	if err != nil {
		return nil, err
	}
	if m != n {
		return nil, errors.New("secret underread")
	}
	return b, nil
}
