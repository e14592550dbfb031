package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-token-agent/internal/crypto"
	"github.com/MKhiriev/go-token-agent/internal/envelope"
	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/models"
)

func TestLockLayer_LocksAllFourFields(t *testing.T) {
	l := NewLockLayer(newTestCodec(), logger.Nop())
	acc := testAccount("work")

	require.NoError(t, l.Lock([]*models.Account{acc}, []byte("lockpw")))
	for _, f := range acc.LockFields() {
		assert.Equal(t, models.LayerLock, f.Layer())
	}
	assert.NotContains(t, string(acc.AccessToken.Value()), "access-work")

	require.NoError(t, l.Unlock([]*models.Account{acc}, []byte("lockpw")))
	assert.Equal(t, []byte("access-work"), acc.AccessToken.Value())
	assert.Equal(t, []byte("secret-work"), acc.ClientSecret.Value())
	for _, f := range acc.LockFields() {
		assert.Equal(t, models.LayerPlain, f.Layer())
	}
}

func TestLockLayer_UnlockIgnoresCodecVersion(t *testing.T) {
	l := NewLockLayer(envelope.NewCodec(newTestCipher(), "1.0.0"), logger.Nop())
	acc := testAccount("work")
	accounts := []*models.Account{acc}

	require.NoError(t, l.Lock(accounts, []byte("lockpw")))
	require.NoError(t, l.Unlock(accounts, []byte("lockpw")))
	assert.Equal(t, []byte("access-work"), acc.AccessToken.Value())
	assert.Equal(t, models.LayerPlain, acc.ClientSecret.Layer())
}

func TestLockLayer_StacksOnMemoryLayer(t *testing.T) {
	mem := NewMemoryLayer(crypto.NewMemoryCipher())
	l := NewLockLayer(newTestCodec(), logger.Nop())
	acc := testAccount("work")
	accounts := []*models.Account{acc}

	require.NoError(t, mem.Wrap(acc))
	require.NoError(t, l.Lock(accounts, []byte("lockpw")))

	assert.Equal(t, models.LayerLock, acc.AccessToken.Layer(), "access token only gets the lock layer")
	assert.Equal(t, models.LayerBoth, acc.RefreshToken.Layer())
	assert.Equal(t, models.LayerBoth, acc.ClientID.Layer())
	assert.Equal(t, models.LayerBoth, acc.ClientSecret.Layer())

	// the memory layer cannot be removed while locked
	assert.ErrorIs(t, mem.Unwrap(acc), models.ErrLayerOrder)
	assert.Equal(t, models.LayerBoth, acc.RefreshToken.Layer())

	require.NoError(t, l.Unlock(accounts, []byte("lockpw")))
	assert.Equal(t, models.LayerMemory, acc.RefreshToken.Layer())
	require.NoError(t, mem.Unwrap(acc))
	assert.Equal(t, []byte("refresh-work"), acc.RefreshToken.Value())
}

func TestLockLayer_DoubleLockFails(t *testing.T) {
	l := NewLockLayer(newTestCodec(), logger.Nop())
	acc := testAccount("work")
	accounts := []*models.Account{acc}

	require.NoError(t, l.Lock(accounts, []byte("pw")))
	assert.ErrorIs(t, l.Lock(accounts, []byte("pw")), models.ErrLayerOrder)
	assert.ErrorIs(t, NewLockLayer(newTestCodec(), logger.Nop()).Unlock([]*models.Account{testAccount("x")}, []byte("pw")), models.ErrLayerOrder)
}

func TestLockLayer_LockIsAtomic(t *testing.T) {
	l := NewLockLayer(newTestCodec(), logger.Nop())
	first := testAccount("first")
	second := testAccount("second")
	// second has a field already lock-wrapped, so the pass must fail there
	second.ClientSecret.Set([]byte("x"), models.LayerLock)

	err := l.Lock([]*models.Account{first, second}, []byte("pw"))
	require.ErrorIs(t, err, models.ErrLayerOrder)

	for _, f := range first.LockFields() {
		assert.Equal(t, models.LayerPlain, f.Layer())
	}
	assert.Equal(t, []byte("access-first"), first.AccessToken.Value())
	assert.Equal(t, models.LayerPlain, second.AccessToken.Layer())
}

func TestLockLayer_UnlockWrongPasswordIsAtomic(t *testing.T) {
	l := NewLockLayer(newTestCodec(), logger.Nop())
	a := testAccount("a")
	b := testAccount("b")
	accounts := []*models.Account{a, b}

	require.NoError(t, l.Lock(accounts, []byte("right")))
	lockedA := append([]byte(nil), a.AccessToken.Value()...)

	err := l.Unlock(accounts, []byte("wrong"))
	require.ErrorIs(t, err, envelope.ErrWrongPassword)
	assert.Equal(t, lockedA, a.AccessToken.Value())
	assert.Equal(t, models.LayerLock, a.AccessToken.Layer())

	require.NoError(t, l.Unlock(accounts, []byte("right")))
	assert.Equal(t, []byte("access-b"), b.AccessToken.Value())
}

func TestLockLayer_UnlockPartiallyCorruptIsAtomic(t *testing.T) {
	l := NewLockLayer(newTestCodec(), logger.Nop())
	a := testAccount("a")
	b := testAccount("b")
	accounts := []*models.Account{a, b}

	require.NoError(t, l.Lock(accounts, []byte("pw")))
	b.ClientID.Set([]byte("garbage"), models.LayerLock)

	err := l.Unlock(accounts, []byte("pw"))
	require.Error(t, err)
	assert.Equal(t, models.LayerLock, a.RefreshToken.Layer(), "first account stays locked")
}

func TestLockLayer_MissingPassword(t *testing.T) {
	l := NewLockLayer(newTestCodec(), logger.Nop())
	assert.ErrorIs(t, l.Lock(nil, nil), envelope.ErrArgumentMissing)
	assert.ErrorIs(t, l.Unlock(nil, nil), envelope.ErrArgumentMissing)
}

func TestLockLayer_EmptyStore(t *testing.T) {
	l := NewLockLayer(newTestCodec(), logger.Nop())
	assert.NoError(t, l.Lock(nil, []byte("pw")))
	assert.NoError(t, l.Unlock(nil, []byte("pw")))
}
