// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/MKhiriev/go-token-agent/internal/secret"
)

// Terminal reads passwords from a terminal without echo.
type Terminal struct {
	in  *os.File
	out io.Writer
}

// NewTerminal returns a [Terminal] reading from stdin and writing prompts to
// stderr, so stdout stays clean for decrypted output.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stderr}
}

// PromptPassword implements [Prompter].
func (t *Terminal) PromptPassword(ctx context.Context, message string) (*secret.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	fmt.Fprint(t.out, message)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(t.out) // newline after hidden input
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}

	return secret.New(password), nil
}
