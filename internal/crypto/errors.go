package crypto

import "errors"

var (
	// ErrAuthentication is returned when a ciphertext fails authentication:
	// the password or key is wrong, or the data was modified.
	ErrAuthentication = errors.New("message authentication failed")

	// ErrInvalidParameters is returned when salt, nonce or key material has
	// the wrong size.
	ErrInvalidParameters = errors.New("invalid cipher parameters")

	// ErrMalformedBlob is returned when a memory-wrapped blob is too short to
	// carry its nonce.
	ErrMalformedBlob = errors.New("malformed memory blob")
)
