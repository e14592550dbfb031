// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the logical identity of a configured credential. Two accounts
// with equal identities denote the same configuration, whatever their secrets.
type Identity struct {
	ShortName string
	IssuerURL string
}

// Account is a cached credential record.
//
// ID identifies the record instance: a re-loaded configuration gets a new ID
// even though its [Identity] stays the same.
type Account struct {
	ID        uuid.UUID
	ShortName string
	IssuerURL string

	AccessToken  Field
	RefreshToken Field
	ClientID     Field
	ClientSecret Field

	// DeathTime is the moment the account must be evicted from the agent.
	// Zero means no lifetime limit.
	DeathTime time.Time
}

// NewAccount constructs an [Account] with a fresh instance ID and empty
// plaintext secret fields.
func NewAccount(shortName, issuerURL string) *Account {
	return &Account{
		ID:        uuid.New(),
		ShortName: shortName,
		IssuerURL: issuerURL,
	}
}

// Identity returns the logical identity of the account.
func (a *Account) Identity() Identity {
	return Identity{ShortName: a.ShortName, IssuerURL: a.IssuerURL}
}

// Matches reports whether the account has the given logical identity.
func (a *Account) Matches(id Identity) bool {
	return a.Identity() == id
}

// Expired reports whether the account lifetime has ended at now.
func (a *Account) Expired(now time.Time) bool {
	return !a.DeathTime.IsZero() && !now.Before(a.DeathTime)
}

// MemoryFields returns the fields covered by the memory-obfuscation layer.
// The access token is never part of this set.
func (a *Account) MemoryFields() []*Field {
	return []*Field{&a.RefreshToken, &a.ClientID, &a.ClientSecret}
}

// LockFields returns the fields covered by the lock layer.
func (a *Account) LockFields() []*Field {
	return []*Field{&a.AccessToken, &a.RefreshToken, &a.ClientID, &a.ClientSecret}
}

// Destroy wipes every secret field of the account.
func (a *Account) Destroy() {
	for _, f := range a.LockFields() {
		f.Wipe()
	}
}
