// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/models"
)

// Accounts is the cached-record store: an ordered list of loaded accounts,
// unique by logical identity.
//
// Every account inside the store is memory-wrapped, except the one a caller
// obtained through [Accounts.Lookup] and has not yet put back with
// [Accounts.Upsert].
//
// Accounts is not safe for concurrent use; the owner serializes access.
type Accounts struct {
	list       []*models.Account
	lent       map[*models.Account]struct{}
	obfuscator AccountObfuscator
	logger     *logger.Logger
}

// NewAccounts constructs an empty store that memory-wraps records with obfuscator.
func NewAccounts(obfuscator AccountObfuscator, log *logger.Logger) *Accounts {
	return &Accounts{
		lent:       make(map[*models.Account]struct{}),
		obfuscator: obfuscator,
		logger:     log,
	}
}

// Upsert memory-wraps acc and stores it. acc must be plaintext, or a record
// obtained from [Accounts.Lookup].
//
// An existing entry with the same identity is removed and destroyed, and acc
// is appended at the tail. If acc itself is already stored it keeps its
// position, and when it was not looked up it is still wrapped and nothing
// happens. On a wrap error the store and acc are left unchanged.
func (s *Accounts) Upsert(acc *models.Account) error {
	i := s.index(acc.Identity())
	if i >= 0 && s.list[i] == acc && !s.isLent(acc) {
		return nil
	}

	if err := s.obfuscator.Wrap(acc); err != nil {
		s.logger.Err(err).
			Str("func", "Accounts.Upsert").
			Str("account", acc.ShortName).
			Msg("failed to memory-wrap account")
		return fmt.Errorf("wrap account %q: %w", acc.ShortName, err)
	}
	delete(s.lent, acc)

	switch {
	case i < 0:
		s.list = append(s.list, acc)
	case s.list[i] == acc:
		// same instance put back after use
	default:
		old := s.list[i]
		s.list = slices.Delete(s.list, i, i+1)
		delete(s.lent, old)
		old.Destroy()
		s.list = append(s.list, acc)
		s.logger.Debug().
			Str("func", "Accounts.Upsert").
			Str("account", acc.ShortName).
			Msg("replaced loaded account")
	}

	return nil
}

// Lookup finds the account with identity id and removes its memory layer.
//
// The returned record is still owned by the store. The caller must call
// [Accounts.Upsert] with it after use, otherwise its secrets stay in plain
// text inside the store.
func (s *Accounts) Lookup(id models.Identity) (*models.Account, error) {
	i := s.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id.ShortName)
	}

	acc := s.list[i]
	if err := s.obfuscator.Unwrap(acc); err != nil {
		s.logger.Err(err).
			Str("func", "Accounts.Lookup").
			Str("account", acc.ShortName).
			Msg("failed to memory-unwrap account")
		return nil, fmt.Errorf("unwrap account %q: %w", acc.ShortName, err)
	}
	s.lent[acc] = struct{}{}

	return acc, nil
}

// Find returns the stored account with identity id without touching its
// layers, or nil.
func (s *Accounts) Find(id models.Identity) *models.Account {
	if i := s.index(id); i >= 0 {
		return s.list[i]
	}
	return nil
}

// FindByShortName returns the first stored account named shortName, or nil.
func (s *Accounts) FindByShortName(shortName string) *models.Account {
	for _, acc := range s.list {
		if acc.ShortName == shortName {
			return acc
		}
	}
	return nil
}

// Remove destroys and removes the account with identity id.
func (s *Accounts) Remove(id models.Identity) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id.ShortName)
	}

	old := s.list[i]
	s.list = slices.Delete(s.list, i, i+1)
	delete(s.lent, old)
	old.Destroy()

	return nil
}

// EvictExpired destroys and removes every account whose lifetime ended at now
// and returns their identities.
func (s *Accounts) EvictExpired(now time.Time) []models.Identity {
	var evicted []models.Identity

	s.list = slices.DeleteFunc(s.list, func(acc *models.Account) bool {
		if !acc.Expired(now) {
			return false
		}
		evicted = append(evicted, acc.Identity())
		delete(s.lent, acc)
		acc.Destroy()
		return true
	})

	return evicted
}

// Snapshot returns the stored accounts in order. The slice is a copy; the
// records are shared with the store.
func (s *Accounts) Snapshot() []*models.Account {
	return slices.Clone(s.list)
}

// Len returns the number of stored accounts.
func (s *Accounts) Len() int {
	return len(s.list)
}

// Identities returns the identities of the stored accounts in order.
func (s *Accounts) Identities() []models.Identity {
	ids := make([]models.Identity, 0, len(s.list))
	for _, acc := range s.list {
		ids = append(ids, acc.Identity())
	}
	return ids
}

// Clear destroys every stored account.
func (s *Accounts) Clear() {
	for _, acc := range s.list {
		acc.Destroy()
	}
	s.list = nil
	clear(s.lent)
}

func (s *Accounts) isLent(acc *models.Account) bool {
	_, ok := s.lent[acc]
	return ok
}

func (s *Accounts) index(id models.Identity) int {
	return slices.IndexFunc(s.list, func(acc *models.Account) bool {
		return acc.Matches(id)
	})
}
