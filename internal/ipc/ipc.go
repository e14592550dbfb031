// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ipc encrypts single messages exchanged with client processes.
//
// Both sides hold the same 256-bit key, usually derived with [SharedKey] from
// a key exchange. Messages travel as
//
//	<plaintext_length>:<nonce_b64>:<cipher_b64>
//
// A malformed or forged message is a hard failure: nothing here prompts or
// retries.
package ipc

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-token-agent/internal/crypto"
)

// Codec encrypts and decrypts IPC messages under a shared key.
type Codec struct {
	cipher crypto.KeyCipher
}

// NewCodec constructs a [Codec] on top of the key-based AEAD primitive.
func NewCodec(cipher crypto.KeyCipher) *Codec {
	return &Codec{cipher: cipher}
}

// EncryptForIPC seals msg under key.
func (c *Codec) EncryptForIPC(msg []byte, key *[crypto.KeySize]byte) (string, error) {
	if key == nil {
		return "", fmt.Errorf("%w: key", ErrArgumentMissing)
	}
	ciphertext, nonce, err := c.cipher.EncryptWithKey(msg, key)
	if err != nil {
		return "", fmt.Errorf("encrypt ipc message: %w", err)
	}

	return fmt.Sprintf("%d:%s:%s",
		len(msg),
		base64.StdEncoding.EncodeToString(nonce),
		base64.StdEncoding.EncodeToString(ciphertext),
	), nil
}

// DecryptForIPC opens an envelope produced by [Codec.EncryptForIPC]. The
// decrypted length must match the length announced by the sender.
func (c *Codec) DecryptForIPC(envelope string, key *[crypto.KeySize]byte) ([]byte, error) {
	if envelope == "" || key == nil {
		return nil, fmt.Errorf("%w: envelope and key are required", ErrArgumentMissing)
	}

	fields := strings.Split(strings.TrimSpace(envelope), ":")
	if len(fields) != 3 || fields[1] == "" || fields[2] == "" {
		return nil, fmt.Errorf("%w: expected 3 fields", ErrMalformedIPCEnvelope)
	}

	msgLen, err := strconv.ParseUint(fields[0], 10, 31)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid length %q", ErrMalformedIPCEnvelope, fields[0])
	}
	nonce, err := base64.StdEncoding.DecodeString(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: decode nonce: %v", ErrMalformedIPCEnvelope, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: decode cipher: %v", ErrMalformedIPCEnvelope, err)
	}

	plaintext, err := c.cipher.DecryptWithKey(ciphertext, nonce, int(msgLen)+crypto.Overhead, key)
	switch {
	case err == nil:
		return plaintext, nil
	case errors.Is(err, crypto.ErrInvalidParameters):
		return nil, fmt.Errorf("%w: %v", ErrMalformedIPCEnvelope, err)
	default:
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
}
