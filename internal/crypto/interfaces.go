package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordCipher is the password-based AEAD primitive.
//
// A key is derived from the password and a random salt with Argon2id, and the
// plaintext is sealed with XSalsa20-Poly1305. The cipher knows nothing about
// text encodings or envelope formats; it only produces and consumes raw
// [Sealed] parts.
type PasswordCipher interface {
	// Encrypt derives a key from password and a fresh salt and seals
	// plaintext under a fresh nonce.
	Encrypt(plaintext, password []byte) (Sealed, error)

	// Decrypt derives the key from password and sealed.Salt and opens
	// sealed.Ciphertext. It returns [ErrAuthentication] when the password is
	// wrong or the ciphertext has been tampered with.
	Decrypt(sealed Sealed, password []byte) ([]byte, error)
}

// KeyCipher is the key-based variant of the AEAD primitive, used where both
// sides already share a 256-bit key.
type KeyCipher interface {
	// EncryptWithKey seals plaintext under key and a fresh nonce.
	EncryptWithKey(plaintext []byte, key *[KeySize]byte) (ciphertext, nonce []byte, err error)

	// DecryptWithKey opens ciphertext whose length must equal expectedLen
	// (plaintext length plus [Overhead]).
	DecryptWithKey(ciphertext, nonce []byte, expectedLen int, key *[KeySize]byte) ([]byte, error)
}

// MemoryCipher obfuscates secrets while they sit in process memory. It is
// keyed by a process-local key that is never persisted or exposed.
type MemoryCipher interface {
	Wrap(plaintext []byte) ([]byte, error)
	Unwrap(blob []byte) ([]byte, error)
}
