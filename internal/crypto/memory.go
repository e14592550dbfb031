// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/chacha20"
)

// memoryCipher obfuscates secrets with ChaCha20 under a key that lives only
// inside a memguard enclave. Blobs are laid out as nonce ‖ keystream-xor.
type memoryCipher struct {
	key  *memguard.Enclave
	rand io.Reader
}

// NewMemoryCipher generates the process-local key. It is meant to be called
// once at startup; the key is never written anywhere and dies with the process.
func NewMemoryCipher() MemoryCipher {
	return &memoryCipher{
		key:  memguard.NewEnclaveRandom(chacha20.KeySize),
		rand: rand.Reader,
	}
}

// Wrap implements [MemoryCipher].
func (c *memoryCipher) Wrap(plaintext []byte) ([]byte, error) {
	blob := make([]byte, chacha20.NonceSize+len(plaintext))
	nonce := blob[:chacha20.NonceSize]
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	if err := c.xor(blob[chacha20.NonceSize:], plaintext, nonce); err != nil {
		return nil, err
	}
	return blob, nil
}

// Unwrap implements [MemoryCipher].
func (c *memoryCipher) Unwrap(blob []byte) ([]byte, error) {
	if len(blob) < chacha20.NonceSize {
		return nil, ErrMalformedBlob
	}
	nonce, body := blob[:chacha20.NonceSize], blob[chacha20.NonceSize:]

	plaintext := make([]byte, len(body))
	if err := c.xor(plaintext, body, nonce); err != nil {
		memguard.WipeBytes(plaintext)
		return nil, err
	}
	return plaintext, nil
}

func (c *memoryCipher) xor(dst, src, nonce []byte) error {
	key, err := c.key.Open()
	if err != nil {
		return fmt.Errorf("open memory key: %w", err)
	}
	defer key.Destroy()

	stream, err := chacha20.NewUnauthenticatedCipher(key.Bytes(), nonce)
	if err != nil {
		return fmt.Errorf("create stream cipher: %w", err)
	}
	stream.XORKeyStream(dst, src)
	return nil
}
