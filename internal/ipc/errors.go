package ipc

import "errors"

var (
	// ErrMalformedIPCEnvelope is returned when a message does not follow the
	// "<length>:<nonce>:<cipher>" layout.
	ErrMalformedIPCEnvelope = errors.New("malformed ipc envelope")

	// ErrDecryptionFailed is returned when a well-formed message does not
	// authenticate under the shared key.
	ErrDecryptionFailed = errors.New("ipc decryption failed")

	// ErrArgumentMissing is returned for an empty message or a nil key.
	ErrArgumentMissing = errors.New("required argument missing")
)
