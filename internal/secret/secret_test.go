package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	a := Derive([]byte("correct horse"), []byte("salt1"))
	b := Derive([]byte("correct horse"), []byte("salt1"))

	assert.Len(t, a, KeyLength)
	assert.Equal(t, a, b, "derivation must be deterministic")

	assert.NotEqual(t, a, Derive([]byte("correct horse"), []byte("salt2")))
	assert.NotEqual(t, a, Derive([]byte("battery staple"), []byte("salt1")))
}

func TestRandom(t *testing.T) {
	a, err := Random(KeyLength)
	assert.NoError(t, err)
	assert.Len(t, a, KeyLength)

	b, err := Random(KeyLength)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
