package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCipher_RoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	svc := NewKeyCipher()

	ct, nonce, err := svc.EncryptWithKey([]byte("message"), key)
	require.NoError(t, err)
	require.Len(t, nonce, NonceSize)

	plain, err := svc.DecryptWithKey(ct, nonce, len("message")+Overhead, key)
	require.NoError(t, err)
	assert.Equal(t, "message", string(plain))
}

func TestKeyCipher_LengthMismatch(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	svc := NewKeyCipher()

	ct, nonce, err := svc.EncryptWithKey([]byte("message"), key)
	require.NoError(t, err)

	_, err = svc.DecryptWithKey(ct, nonce, len("message"), key)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestKeyCipher_WrongKey(t *testing.T) {
	k1, err := GenerateKey()
	require.NoError(t, err)
	k2, err := GenerateKey()
	require.NoError(t, err)
	svc := NewKeyCipher()

	ct, nonce, err := svc.EncryptWithKey([]byte("m"), k1)
	require.NoError(t, err)

	_, err = svc.DecryptWithKey(ct, nonce, len(ct), k2)
	assert.True(t, errors.Is(err, ErrAuthentication))
}

func TestKeyCipher_MissingKey(t *testing.T) {
	svc := NewKeyCipher()
	_, _, err := svc.EncryptWithKey([]byte("m"), nil)
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = svc.DecryptWithKey([]byte("m"), make([]byte, NonceSize), 1, nil)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}
