package envelope

import "errors"

var (
	// ErrMalformedEnvelope is returned when a persisted envelope is
	// structurally invalid. No decryption is attempted in that case.
	ErrMalformedEnvelope = errors.New("malformed cipher envelope")

	// ErrWrongPassword is returned when the envelope is well formed but does
	// not authenticate under the given password.
	ErrWrongPassword = errors.New("wrong password")

	// ErrArgumentMissing is returned when a required input is empty.
	ErrArgumentMissing = errors.New("required argument missing")
)
