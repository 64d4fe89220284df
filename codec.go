package rwt

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Segments are base64url without padding, so the separator can never appear
// inside one.
var b64 = base64.RawURLEncoding

func serialize(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return b, nil
}

func deserialize[T any](b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	return v, nil
}

func encodeText(b []byte) string { return b64.EncodeToString(b) }

func decodeText(s string) ([]byte, error) {
	b, err := b64.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return b, nil
}
