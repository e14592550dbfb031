// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-token-agent/internal/envelope"
	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/internal/prompt"
	"github.com/MKhiriev/go-token-agent/internal/secret"
	"github.com/MKhiriev/go-token-agent/internal/store"
)

// PasswordPrompt is the message shown when asking for a decryption password.
const PasswordPrompt = "Enter decryption Password: "

type cryptService struct {
	codec    envelope.EnvelopeCodec
	prompter prompt.Prompter
	reporter prompt.Reporter
	files    store.EnvelopeFileStorage
	maxTries int
	logger   *logger.Logger
}

// NewCryptService constructs a [CryptService]. maxTries below one is treated
// as one.
func NewCryptService(
	codec envelope.EnvelopeCodec,
	prompter prompt.Prompter,
	reporter prompt.Reporter,
	files store.EnvelopeFileStorage,
	maxTries int,
	logger *logger.Logger,
) CryptService {
	return &cryptService{
		codec:    codec,
		prompter: prompter,
		reporter: reporter,
		files:    files,
		maxTries: max(maxTries, 1),
		logger:   logger,
	}
}

func (s *cryptService) DecryptWithRetry(ctx context.Context, lines []string, password *secret.Buffer) (*secret.Buffer, error) {
	if password.IsSet() {
		plain, err := s.codec.DecodeLines(lines, password.Bytes())
		if err != nil {
			return nil, err
		}
		return secret.New(plain), nil
	}

	for attempt := 1; attempt <= s.maxTries; attempt++ {
		plain, err := s.attempt(ctx, lines)
		if err == nil {
			return plain, nil
		}
		if !retryable(err) {
			return nil, err
		}

		s.logger.Warn().
			Err(err).
			Str("func", "cryptService.DecryptWithRetry").
			Int("attempt", attempt).
			Int("max_tries", s.maxTries).
			Msg("decryption with prompted password failed")
		s.reporter.ReportError(err)
	}

	return nil, ErrMaxRetriesExceeded
}

// attempt prompts once and tries the entered password. The password buffer
// is destroyed before returning.
func (s *cryptService) attempt(ctx context.Context, lines []string) (*secret.Buffer, error) {
	pw, err := s.prompter.PromptPassword(ctx, PasswordPrompt)
	if err != nil {
		return nil, fmt.Errorf("prompt password: %w", err)
	}
	defer pw.Destroy()

	plain, err := s.codec.DecodeLines(lines, nonNil(pw.Bytes()))
	if err != nil {
		return nil, err
	}
	return secret.New(plain), nil
}

func (s *cryptService) DecryptFile(ctx context.Context, path string, password *secret.Buffer) (*secret.Buffer, error) {
	lines, err := s.files.ReadLines(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", envelope.ErrMalformedEnvelope, path)
	}
	return s.DecryptWithRetry(ctx, lines, password)
}

func (s *cryptService) DecryptAgentFile(ctx context.Context, name string, password *secret.Buffer) (*secret.Buffer, error) {
	path, err := s.files.Path(name)
	if err != nil {
		return nil, err
	}
	return s.DecryptFile(ctx, path, password)
}

func (s *cryptService) EncryptFile(ctx context.Context, path string, plaintext []byte, password *secret.Buffer) error {
	if !password.IsSet() {
		return fmt.Errorf("%w: password", envelope.ErrArgumentMissing)
	}

	text, err := s.codec.EncodeWithVersion(plaintext, password.Bytes())
	if err != nil {
		return err
	}
	return s.files.WriteText(ctx, path, text)
}

func (s *cryptService) ReencryptFile(ctx context.Context, path string, password, newPassword *secret.Buffer) error {
	if !password.IsSet() && !newPassword.IsSet() {
		return fmt.Errorf("%w: a password is required to re-encrypt", envelope.ErrArgumentMissing)
	}

	plain, err := s.DecryptFile(ctx, path, password)
	if err != nil {
		return err
	}
	defer plain.Destroy()

	target := newPassword
	if !target.IsSet() {
		target = password
	}
	if err = s.EncryptFile(ctx, path, plain.Bytes(), target); err != nil {
		return err
	}

	s.logger.Info().
		Str("func", "cryptService.ReencryptFile").
		Str("path", path).
		Str("version", s.codec.Version()).
		Msg("file re-encrypted")
	return nil
}

// retryable reports whether another prompt may succeed where err failed.
func retryable(err error) bool {
	return errors.Is(err, envelope.ErrWrongPassword)
}

// nonNil keeps an empty entered password distinguishable from a missing one.
func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
