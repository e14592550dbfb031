// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-token-agent/internal/envelope"
	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/internal/version"
	"github.com/MKhiriev/go-token-agent/models"
)

// lockFormatVersion is the version lock values are decoded with. They are
// written by [envelope.EnvelopeCodec.Encode], which always emits the current
// format whatever version the codec was built with.
var lockFormatVersion = version.MinCurrentFormat.String()

// LockLayer encrypts and decrypts all four secret fields of a set of
// accounts with the lock password.
//
// Both directions are all-or-nothing: new field values are computed for
// every account first and committed only when all of them succeeded.
type LockLayer struct {
	codec  envelope.EnvelopeCodec
	logger *logger.Logger
}

// NewLockLayer constructs a [LockLayer] over codec.
func NewLockLayer(codec envelope.EnvelopeCodec, logger *logger.Logger) *LockLayer {
	return &LockLayer{codec: codec, logger: logger}
}

// Lock wraps every field of every account in the lock layer, on top of the
// memory layer where present.
func (l *LockLayer) Lock(accounts []*models.Account, password []byte) error {
	if password == nil {
		return fmt.Errorf("%w: lock password", envelope.ErrArgumentMissing)
	}

	var changes staged
	for _, acc := range accounts {
		for _, f := range acc.LockFields() {
			layer, err := f.Layer().WrapLock()
			if err != nil {
				changes.discard()
				return fmt.Errorf("lock account %q: %w", acc.ShortName, err)
			}
			text, err := l.codec.Encode(f.Value(), password)
			if err != nil {
				changes.discard()
				l.logger.Err(err).
					Str("func", "LockLayer.Lock").
					Str("account", acc.ShortName).
					Msg("failed to encrypt field")
				return fmt.Errorf("lock account %q: %w", acc.ShortName, err)
			}
			changes = append(changes, fieldChange{field: f, value: []byte(text), layer: layer})
		}
	}

	changes.commit()
	return nil
}

// Unlock removes the lock layer from every field of every account. Any field
// that fails to decrypt fails the whole operation and nothing is changed.
func (l *LockLayer) Unlock(accounts []*models.Account, password []byte) error {
	if password == nil {
		return fmt.Errorf("%w: lock password", envelope.ErrArgumentMissing)
	}

	var changes staged
	for _, acc := range accounts {
		for _, f := range acc.LockFields() {
			layer, err := f.Layer().UnwrapLock()
			if err != nil {
				changes.discard()
				return fmt.Errorf("unlock account %q: %w", acc.ShortName, err)
			}
			plain, err := l.codec.DecodeText(string(f.Value()), password, lockFormatVersion)
			if err != nil {
				changes.discard()
				return fmt.Errorf("unlock account %q: %w", acc.ShortName, err)
			}
			changes = append(changes, fieldChange{field: f, value: plain, layer: layer})
		}
	}

	changes.commit()
	return nil
}
