package rwt

import "errors"

var (
	// ErrMalformedToken reports token text that does not split into exactly
	// two segments, or a segment that is not valid base64url.
	ErrMalformedToken = errors.New("rwt: malformed token")

	// ErrEncoding reports a payload the JSON encoder cannot represent.
	ErrEncoding = errors.New("rwt: cannot encode payload")

	// ErrDecoding reports payload bytes that do not match the shape of the
	// target payload type.
	ErrDecoding = errors.New("rwt: cannot decode payload")

	// ErrSignatureMismatch reports a recomputed signature that disagrees
	// with the one carried by the token. The token is forged or corrupted
	// and must be rejected; the error intentionally carries no detail about
	// how the signatures differ.
	ErrSignatureMismatch = errors.New("rwt: signature mismatch")
)
