package rwt

import (
	"crypto/hmac"
	"crypto/sha256"
)

// sign computes the HMAC-SHA256 of msg keyed with secret. The algorithm is
// fixed: the wire format has no field to express which one was used.
func sign(msg, secret []byte) []byte {
	h := hmac.New(sha256.New, secret)
	h.Write(msg)
	return h.Sum(nil)
}

// eq reports whether a and b are equal. Length may short-circuit; once
// lengths match, every byte is inspected with no early exit on the first
// mismatch, so timing does not reveal where two signatures diverge.
func eq(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return fold(a, b) == 0
}

// fold accumulates the pairwise XOR of two equal-length slices. Zero iff
// the slices are identical.
func fold(a, b []byte) byte {
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v
}
