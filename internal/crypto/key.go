// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

type keyCipher struct {
	rand io.Reader
}

// NewKeyCipher constructs a [KeyCipher] backed by NaCl secretbox.
func NewKeyCipher() KeyCipher {
	return &keyCipher{rand: rand.Reader}
}

// EncryptWithKey implements [KeyCipher].
func (c *keyCipher) EncryptWithKey(plaintext []byte, key *[KeySize]byte) ([]byte, []byte, error) {
	if key == nil {
		return nil, nil, fmt.Errorf("%w: missing key", ErrInvalidParameters)
	}
	var nonce [NonceSize]byte
	if _, err := io.ReadFull(c.rand, nonce[:]); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}
	return secretbox.Seal(nil, plaintext, &nonce, key), nonce[:], nil
}

// DecryptWithKey implements [KeyCipher]. A ciphertext whose length differs
// from expectedLen is rejected without being opened.
func (c *keyCipher) DecryptWithKey(ciphertext, nonce []byte, expectedLen int, key *[KeySize]byte) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: missing key", ErrInvalidParameters)
	}
	n, err := toNonce(nonce)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) != expectedLen {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, expected %d", ErrAuthentication, len(ciphertext), expectedLen)
	}

	plaintext, ok := secretbox.Open(nil, ciphertext, n, key)
	if !ok {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

// GenerateKey returns a random 256-bit key.
func GenerateKey() (*[KeySize]byte, error) {
	var key [KeySize]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &key, nil
}
