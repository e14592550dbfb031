// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// SaltSize is the Argon2id salt length in bytes.
	SaltSize = 16
	// NonceSize is the XSalsa20-Poly1305 nonce length in bytes.
	NonceSize = 24
	// KeySize is the symmetric key length in bytes.
	KeySize = 32
	// Overhead is the authentication tag length added to every ciphertext.
	Overhead = secretbox.Overhead
)

// Sealed holds the raw parts of a password-encrypted message.
type Sealed struct {
	Ciphertext []byte
	Nonce      []byte
	Salt       []byte
}

// Params are the Argon2id tuning parameters.
type Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultParams are the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
var DefaultParams = Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

// passwordCipher is the private implementation of [PasswordCipher].
type passwordCipher struct {
	params Params
	rand   io.Reader
}

// NewPasswordCipher constructs a [PasswordCipher] using [DefaultParams].
func NewPasswordCipher() PasswordCipher {
	return NewPasswordCipherWithParams(DefaultParams)
}

// NewPasswordCipherWithParams constructs a [PasswordCipher] with custom
// Argon2id parameters. Envelopes can only be opened with the parameters they
// were sealed with.
func NewPasswordCipherWithParams(params Params) PasswordCipher {
	return &passwordCipher{params: params, rand: rand.Reader}
}

// Encrypt implements [PasswordCipher]. Salt and nonce are read from the OS
// CSPRNG; the derived key is wiped before returning.
func (c *passwordCipher) Encrypt(plaintext, password []byte) (Sealed, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return Sealed{}, fmt.Errorf("generate salt: %w", err)
	}

	var nonce [NonceSize]byte
	if _, err := io.ReadFull(c.rand, nonce[:]); err != nil {
		return Sealed{}, fmt.Errorf("generate nonce: %w", err)
	}

	key := c.deriveKey(password, salt)
	defer memguard.WipeBytes(key[:])

	return Sealed{
		Ciphertext: secretbox.Seal(nil, plaintext, &nonce, key),
		Nonce:      nonce[:],
		Salt:       salt,
	}, nil
}

// Decrypt implements [PasswordCipher].
func (c *passwordCipher) Decrypt(sealed Sealed, password []byte) ([]byte, error) {
	if len(sealed.Salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes", ErrInvalidParameters, len(sealed.Salt))
	}
	nonce, err := toNonce(sealed.Nonce)
	if err != nil {
		return nil, err
	}

	key := c.deriveKey(password, sealed.Salt)
	defer memguard.WipeBytes(key[:])

	// An error here almost always means a wrong password.
	plaintext, ok := secretbox.Open(nil, sealed.Ciphertext, nonce, key)
	if !ok {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

func (c *passwordCipher) deriveKey(password, salt []byte) *[KeySize]byte {
	derived := argon2.IDKey(password, salt, c.params.Time, c.params.Memory, c.params.Threads, KeySize)
	var key [KeySize]byte
	copy(key[:], derived)
	memguard.WipeBytes(derived)
	return &key
}

func toNonce(b []byte) (*[NonceSize]byte, error) {
	if len(b) != NonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes", ErrInvalidParameters, len(b))
	}
	var nonce [NonceSize]byte
	copy(nonce[:], b)
	return &nonce, nil
}
