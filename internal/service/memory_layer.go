package service

import (
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-token-agent/internal/crypto"
	"github.com/MKhiriev/go-token-agent/models"
)

// MemoryLayer applies the memory-obfuscation layer to the refresh token,
// client id and client secret of an account. The access token is never
// touched.
//
// MemoryLayer implements store.AccountObfuscator.
type MemoryLayer struct {
	cipher crypto.MemoryCipher
}

// NewMemoryLayer constructs a [MemoryLayer] over cipher, which holds the
// process-local key.
func NewMemoryLayer(cipher crypto.MemoryCipher) *MemoryLayer {
	return &MemoryLayer{cipher: cipher}
}

type fieldChange struct {
	field *models.Field
	value []byte
	layer models.Layer
}

// staged holds new field values until every one of them has been computed.
type staged []fieldChange

func (s staged) commit() {
	for _, c := range s {
		c.field.Set(c.value, c.layer)
	}
}

func (s staged) discard() {
	for _, c := range s {
		memguard.WipeBytes(c.value)
	}
}

// Wrap memory-wraps the three fields of acc. On error acc is unchanged.
func (m *MemoryLayer) Wrap(acc *models.Account) error {
	return m.apply(acc, models.Layer.WrapMemory, m.cipher.Wrap)
}

// Unwrap removes the memory layer from the three fields of acc. Fields still
// covered by the lock layer fail with [models.ErrLayerOrder]. On error acc is
// unchanged.
func (m *MemoryLayer) Unwrap(acc *models.Account) error {
	return m.apply(acc, models.Layer.UnwrapMemory, m.cipher.Unwrap)
}

func (m *MemoryLayer) apply(
	acc *models.Account,
	step func(models.Layer) (models.Layer, error),
	transform func([]byte) ([]byte, error),
) error {
	fields := acc.MemoryFields()
	changes := make(staged, 0, len(fields))

	for _, f := range fields {
		layer, err := step(f.Layer())
		if err != nil {
			changes.discard()
			return err
		}
		value, err := transform(f.Value())
		if err != nil {
			changes.discard()
			return fmt.Errorf("memory layer: %w", err)
		}
		changes = append(changes, fieldChange{field: f, value: value, layer: layer})
	}

	changes.commit()
	return nil
}
