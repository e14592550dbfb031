package service

import (
	"errors"

	"github.com/MKhiriev/go-token-agent/internal/envelope"
	"github.com/MKhiriev/go-token-agent/internal/prompt"
	"github.com/MKhiriev/go-token-agent/internal/store"
	"github.com/MKhiriev/go-token-agent/internal/validators"
)

var (
	// ErrMaxRetriesExceeded is returned when every prompted password failed.
	ErrMaxRetriesExceeded = errors.New("maximum number of password tries exceeded")

	// ErrAgentLocked is returned by operations refused while the agent is locked.
	ErrAgentLocked = errors.New("agent is locked")
	// ErrAgentNotLocked is returned when unlocking an agent that is not locked.
	ErrAgentNotLocked = errors.New("agent is not locked")
)

// IsRecoverable reports whether err leaves the agent usable: the user can
// simply try again. Malformed envelopes and IPC messages are corruption or
// protocol violations and are not recoverable.
func IsRecoverable(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, envelope.ErrWrongPassword),
		errors.Is(err, ErrMaxRetriesExceeded),
		errors.Is(err, ErrAgentLocked),
		errors.Is(err, ErrAgentNotLocked),
		errors.Is(err, prompt.ErrCancelled),
		errors.Is(err, store.ErrAccountNotFound),
		errors.Is(err, store.ErrAccountConfigNotFound),
		errors.Is(err, validators.ErrInvalidShortName),
		errors.Is(err, validators.ErrInvalidIssuerURL),
		errors.Is(err, validators.ErrEmptySecrets):
		return true
	default:
		return false
	}
}
