// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-token-agent/internal/crypto"
	"github.com/MKhiriev/go-token-agent/internal/version"
)

// codec is the private implementation of [EnvelopeCodec].
type codec struct {
	cipher  crypto.PasswordCipher
	version string
}

// NewCodec constructs an [EnvelopeCodec]. softwareVersion is written into
// version lines and used by callers that decode their own envelopes with
// [EnvelopeCodec.DecodeText].
func NewCodec(cipher crypto.PasswordCipher, softwareVersion string) EnvelopeCodec {
	return &codec{cipher: cipher, version: softwareVersion}
}

// Version implements [EnvelopeCodec].
func (c *codec) Version() string {
	return c.version
}

// Encode implements [EnvelopeCodec]. New envelopes are never legacy.
func (c *codec) Encode(plaintext, password []byte) (string, error) {
	if password == nil {
		return "", fmt.Errorf("%w: password", ErrArgumentMissing)
	}
	sealed, err := c.cipher.Encrypt(plaintext, password)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return formatFields(sealed, base64.StdEncoding), nil
}

// EncodeWithVersion implements [EnvelopeCodec].
func (c *codec) EncodeWithVersion(plaintext, password []byte) (string, error) {
	text, err := c.Encode(plaintext, password)
	if err != nil {
		return "", err
	}
	return text + "\n" + version.Line(c.version), nil
}

// Decode implements [EnvelopeCodec].
func (c *codec) Decode(text string, password []byte) ([]byte, error) {
	return c.DecodeLines(splitLines(text), password)
}

// DecodeLines implements [EnvelopeCodec].
func (c *codec) DecodeLines(lines []string, password []byte) ([]byte, error) {
	if password == nil {
		return nil, fmt.Errorf("%w: password", ErrArgumentMissing)
	}
	env, err := ParseLines(lines)
	if err != nil {
		return nil, err
	}
	return c.open(env, password)
}

// DecodeText implements [EnvelopeCodec]. An empty ver selects the legacy path.
func (c *codec) DecodeText(cipher string, password []byte, ver string) ([]byte, error) {
	if cipher == "" || password == nil {
		return nil, fmt.Errorf("%w: cipher and password are required", ErrArgumentMissing)
	}
	env, err := ParseWithVersion(cipher, ver)
	if err != nil {
		return nil, err
	}
	return c.open(env, password)
}

func (c *codec) open(env Envelope, password []byte) ([]byte, error) {
	plaintext, err := c.cipher.Decrypt(env.Sealed(), password)
	switch {
	case err == nil:
		return plaintext, nil
	case errors.Is(err, crypto.ErrAuthentication):
		return nil, ErrWrongPassword
	case errors.Is(err, crypto.ErrInvalidParameters):
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	default:
		return nil, fmt.Errorf("decrypt: %w", err)
	}
}

// EncodeLegacy writes a pre-2.1.0 envelope. Only migration code and test
// fixtures need it; regular writers use [EnvelopeCodec.Encode].
func EncodeLegacy(cipher crypto.PasswordCipher, plaintext, password []byte) (string, error) {
	sealed, err := cipher.Encrypt(plaintext, password)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return formatFields(sealed, hexEncoding{}), nil
}
