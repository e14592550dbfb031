package prompt

import "errors"

var (
	// ErrNotTerminal is returned when the input is not an interactive terminal.
	ErrNotTerminal = errors.New("input is not a terminal")

	// ErrCancelled is returned when the user aborts the prompt.
	ErrCancelled = errors.New("password prompt cancelled")
)
