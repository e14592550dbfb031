package prompt

import (
	"context"

	"github.com/MKhiriev/go-token-agent/internal/secret"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/prompt_mock.go -package=mock

// Prompter asks the user for a password. Implementations block until the
// user answers or ctx is done.
type Prompter interface {
	// PromptPassword shows message and returns the entered password. The
	// caller owns the returned buffer and must destroy it.
	PromptPassword(ctx context.Context, message string) (*secret.Buffer, error)
}

// Reporter shows a recoverable error to the user between prompts.
type Reporter interface {
	ReportError(err error)
}
