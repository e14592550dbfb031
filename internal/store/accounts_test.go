package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/models"
)

// flipObfuscator inverts every byte of the memory fields.
type flipObfuscator struct {
	wrapErr error
}

func flip(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = ^c
	}
	return out
}

func (o *flipObfuscator) Wrap(acc *models.Account) error {
	if o.wrapErr != nil {
		return o.wrapErr
	}
	return o.apply(acc, models.Layer.WrapMemory)
}

func (o *flipObfuscator) Unwrap(acc *models.Account) error {
	return o.apply(acc, models.Layer.UnwrapMemory)
}

func (o *flipObfuscator) apply(acc *models.Account, step func(models.Layer) (models.Layer, error)) error {
	fields := acc.MemoryFields()
	next := make([]models.Layer, len(fields))
	for i, f := range fields {
		l, err := step(f.Layer())
		if err != nil {
			return err
		}
		next[i] = l
	}
	for i, f := range fields {
		f.Set(flip(f.Value()), next[i])
	}
	return nil
}

func newAccount(name, refresh string) *models.Account {
	acc := models.NewAccount(name, "https://"+name+".example.com")
	acc.AccessToken = models.NewField([]byte("access-" + name))
	acc.RefreshToken = models.NewField([]byte(refresh))
	acc.ClientID = models.NewField([]byte("client-" + name))
	acc.ClientSecret = models.NewField([]byte("secret-" + name))
	return acc
}

func newTestAccounts() *Accounts {
	return NewAccounts(&flipObfuscator{}, logger.Nop())
}

func TestAccounts_UpsertWrapsMemoryFields(t *testing.T) {
	s := newTestAccounts()
	acc := newAccount("work", "refresh")

	require.NoError(t, s.Upsert(acc))
	assert.Equal(t, 1, s.Len())

	assert.Equal(t, models.LayerMemory, acc.RefreshToken.Layer())
	assert.Equal(t, models.LayerMemory, acc.ClientID.Layer())
	assert.Equal(t, models.LayerMemory, acc.ClientSecret.Layer())
	assert.NotEqual(t, []byte("refresh"), acc.RefreshToken.Value())

	// access token never carries the memory layer
	assert.Equal(t, models.LayerPlain, acc.AccessToken.Layer())
	assert.Equal(t, []byte("access-work"), acc.AccessToken.Value())
}

func TestAccounts_UpsertNewIdentityAppends(t *testing.T) {
	s := newTestAccounts()
	require.NoError(t, s.Upsert(newAccount("a", "r1")))
	require.NoError(t, s.Upsert(newAccount("b", "r2")))

	assert.Equal(t, 2, s.Len())
	ids := s.Identities()
	assert.Equal(t, "a", ids[0].ShortName)
	assert.Equal(t, "b", ids[1].ShortName)
}

func TestAccounts_UpsertSameIdentityReplaces(t *testing.T) {
	s := newTestAccounts()
	old := newAccount("a", "old-refresh")
	require.NoError(t, s.Upsert(old))
	require.NoError(t, s.Upsert(newAccount("b", "r2")))

	replacement := newAccount("a", "new-refresh")
	require.NoError(t, s.Upsert(replacement))

	assert.Equal(t, 2, s.Len(), "length must be unchanged")
	ids := s.Identities()
	assert.Equal(t, "b", ids[0].ShortName)
	assert.Equal(t, "a", ids[1].ShortName, "replacement goes to the tail")

	// old secrets are wiped
	assert.Nil(t, old.RefreshToken.Value())
	assert.Nil(t, old.AccessToken.Value())

	got, err := s.Lookup(replacement.Identity())
	require.NoError(t, err)
	assert.Same(t, replacement, got)
	assert.Equal(t, []byte("new-refresh"), got.RefreshToken.Value())
}

func TestAccounts_UpsertSameInstanceKeepsPosition(t *testing.T) {
	s := newTestAccounts()
	a := newAccount("a", "r1")
	require.NoError(t, s.Upsert(a))
	require.NoError(t, s.Upsert(newAccount("b", "r2")))

	got, err := s.Lookup(a.Identity())
	require.NoError(t, err)
	require.NoError(t, s.Upsert(got))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "a", s.Identities()[0].ShortName)
	assert.Equal(t, []byte("access-a"), a.AccessToken.Value(), "re-upsert must not wipe the same instance")
	assert.Equal(t, models.LayerMemory, a.RefreshToken.Layer())
}

func TestAccounts_UpsertStoredInstanceIsNoop(t *testing.T) {
	s := newTestAccounts()
	a := newAccount("a", "r1")
	require.NoError(t, s.Upsert(a))
	wrapped := append([]byte(nil), a.RefreshToken.Value()...)

	require.NoError(t, s.Upsert(a), "already stored and wrapped")
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, models.LayerMemory, a.RefreshToken.Layer())
	assert.Equal(t, wrapped, a.RefreshToken.Value())

	got, err := s.Lookup(a.Identity())
	require.NoError(t, err)
	require.NoError(t, s.Upsert(got))
	require.NoError(t, s.Upsert(got), "put back twice")
	assert.Equal(t, models.LayerMemory, a.RefreshToken.Layer())

	got, err = s.Lookup(a.Identity())
	require.NoError(t, err)
	assert.Equal(t, []byte("r1"), got.RefreshToken.Value())
}

func TestAccounts_UpsertWrapErrorLeavesStoreUnchanged(t *testing.T) {
	wrapErr := errors.New("boom")
	s := NewAccounts(&flipObfuscator{wrapErr: wrapErr}, logger.Nop())

	acc := newAccount("a", "r1")
	err := s.Upsert(acc)
	require.ErrorIs(t, err, wrapErr)
	assert.Zero(t, s.Len())
	assert.Equal(t, models.LayerPlain, acc.RefreshToken.Layer())
}

func TestAccounts_LookupUnwraps(t *testing.T) {
	s := newTestAccounts()
	acc := newAccount("a", "refresh")
	require.NoError(t, s.Upsert(acc))

	got, err := s.Lookup(models.Identity{ShortName: "a", IssuerURL: "https://a.example.com"})
	require.NoError(t, err)
	assert.Equal(t, models.LayerPlain, got.RefreshToken.Layer())
	assert.Equal(t, []byte("refresh"), got.RefreshToken.Value())
	assert.Equal(t, []byte("client-a"), got.ClientID.Value())
	assert.Equal(t, []byte("secret-a"), got.ClientSecret.Value())
}

func TestAccounts_LookupNotFound(t *testing.T) {
	s := newTestAccounts()
	require.NoError(t, s.Upsert(newAccount("a", "r")))

	_, err := s.Lookup(models.Identity{ShortName: "a", IssuerURL: "https://other.example.com"})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccounts_LookupTwiceFailsLayerOrder(t *testing.T) {
	s := newTestAccounts()
	acc := newAccount("a", "r")
	require.NoError(t, s.Upsert(acc))

	_, err := s.Lookup(acc.Identity())
	require.NoError(t, err)
	_, err = s.Lookup(acc.Identity())
	assert.ErrorIs(t, err, models.ErrLayerOrder)
}

func TestAccounts_Remove(t *testing.T) {
	s := newTestAccounts()
	acc := newAccount("a", "r")
	require.NoError(t, s.Upsert(acc))

	require.NoError(t, s.Remove(acc.Identity()))
	assert.Zero(t, s.Len())
	assert.Nil(t, acc.ClientSecret.Value())

	assert.ErrorIs(t, s.Remove(acc.Identity()), ErrAccountNotFound)
}

func TestAccounts_EvictExpired(t *testing.T) {
	s := newTestAccounts()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	expired := newAccount("expired", "r1")
	expired.DeathTime = now.Add(-time.Second)
	alive := newAccount("alive", "r2")
	alive.DeathTime = now.Add(time.Hour)
	forever := newAccount("forever", "r3")

	for _, acc := range []*models.Account{expired, alive, forever} {
		require.NoError(t, s.Upsert(acc))
	}

	evicted := s.EvictExpired(now)
	require.Len(t, evicted, 1)
	assert.Equal(t, "expired", evicted[0].ShortName)
	assert.Equal(t, 2, s.Len())
	assert.Nil(t, expired.RefreshToken.Value(), "evicted records are wiped")
	assert.NotNil(t, alive.RefreshToken.Value())
}

func TestAccounts_SnapshotIsCopy(t *testing.T) {
	s := newTestAccounts()
	require.NoError(t, s.Upsert(newAccount("a", "r")))

	snap := s.Snapshot()
	snap[0] = nil
	assert.NotNil(t, s.Snapshot()[0])
}

func TestAccounts_FindDoesNotUnwrap(t *testing.T) {
	s := newTestAccounts()
	acc := newAccount("a", "r")
	require.NoError(t, s.Upsert(acc))

	assert.Same(t, acc, s.Find(acc.Identity()))
	assert.Same(t, acc, s.FindByShortName("a"))
	assert.Nil(t, s.FindByShortName("missing"))
	assert.Equal(t, models.LayerMemory, acc.RefreshToken.Layer())
}

func TestAccounts_Clear(t *testing.T) {
	s := newTestAccounts()
	acc := newAccount("a", "r")
	require.NoError(t, s.Upsert(acc))

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Nil(t, acc.AccessToken.Value())
}
