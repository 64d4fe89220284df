/*
Package rwt issues and verifies compact signed tokens carrying an arbitrary
application-defined payload.

A token is the JSON encoding of the payload, authenticated with HMAC-SHA256
under a caller-supplied secret. Both halves are base64url encoded without
padding and joined with a dot. The format carries no algorithm identifier:
the signing algorithm is a property of the application, not of the token, so
the issuing and verifying parties must agree on the secret out of band.

The payload is opaque to this package. It is never inspected, and no claims
(expiration, issuer, audience) are injected or enforced.
*/
package rwt
