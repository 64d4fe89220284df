package rwt

import "strings"

// Separator joins the encoded payload and signature halves of a token. It is
// not part of the base64url alphabet, so a well-formed token contains it
// exactly once.
const Separator = "."

// Token pairs a payload with the signature computed over its serialized
// bytes. Values are only produced by Parse after the signature checks out;
// there is no mutable token state.
type Token[T any] struct {
	Payload   T
	signature []byte
}

// Signature returns a copy of the token's raw signature bytes.
func (t Token[T]) Signature() []byte {
	return append([]byte(nil), t.signature...)
}

// Issue serializes payload, signs the serialized bytes with secret, and
// returns the printable single-line token string. The output depends only on
// the payload and the secret: no clock, no process state.
//
// An empty secret is accepted. Secret strength is the caller's concern.
func Issue[T any](payload T, secret []byte) (string, error) {
	body, err := serialize(payload)
	if err != nil {
		return "", err
	}
	return encodeText(body) + Separator + encodeText(sign(body, secret)), nil
}

// Verify checks token against secret and returns the payload it carries.
// Any returned error means the token must be rejected outright; a
// signature mismatch in particular gives no partial trust in the payload.
func Verify[T any](token string, secret []byte) (T, error) {
	t, err := Parse[T](token, secret)
	return t.Payload, err
}

// Parse is Verify, retaining the token's signature alongside its payload.
func Parse[T any](token string, secret []byte) (Token[T], error) {
	var zero Token[T]

	spl := strings.Split(token, Separator)
	if len(spl) != 2 {
		return zero, ErrMalformedToken
	}

	body, err := decodeText(spl[0])
	if err != nil {
		return zero, err
	}
	sig, err := decodeText(spl[1])
	if err != nil {
		return zero, err
	}

	// recompute over the raw serialized bytes, then compare in constant
	// time. The payload is not deserialized until the signature holds.
	if !eq(sign(body, secret), sig) {
		return zero, ErrSignatureMismatch
	}

	payload, err := deserialize[T](body)
	if err != nil {
		return zero, err
	}
	return Token[T]{Payload: payload, signature: sig}, nil
}
