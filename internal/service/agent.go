// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-token-agent/internal/envelope"
	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/internal/store"
	"github.com/MKhiriev/go-token-agent/models"
)

// AgentState is the lock state of an [Agent].
type AgentState int

const (
	// StateUnlocked is the initial state: accounts can be added and used.
	StateUnlocked AgentState = iota
	// StateLocked means every account field carries the lock layer.
	StateLocked
)

func (s AgentState) String() string {
	if s == StateLocked {
		return "locked"
	}
	return "unlocked"
}

// Agent owns the loaded accounts and serializes every operation on them.
type Agent struct {
	mu sync.Mutex

	state         AgentState
	lockHash      []byte
	failedUnlocks int

	accounts *store.Accounts
	lock     *LockLayer
	hashCost int
	now      func() time.Time
	logger   *logger.Logger
}

// AgentOption customizes an [Agent].
type AgentOption func(*Agent)

// WithLockHashCost sets the bcrypt cost of the lock password hash.
func WithLockHashCost(cost int) AgentOption {
	return func(a *Agent) { a.hashCost = cost }
}

// WithClock replaces time.Now, for eviction.
func WithClock(now func() time.Time) AgentOption {
	return func(a *Agent) { a.now = now }
}

// NewAgent constructs an unlocked agent over accounts.
func NewAgent(accounts *store.Accounts, lock *LockLayer, logger *logger.Logger, opts ...AgentOption) *Agent {
	a := &Agent{
		state:    StateUnlocked,
		accounts: accounts,
		lock:     lock,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State returns the current lock state.
func (a *Agent) State() AgentState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Add stores a plaintext account, replacing any loaded account with the same
// identity.
func (a *Agent) Add(acc *models.Account) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateLocked {
		return ErrAgentLocked
	}
	if err := a.accounts.Upsert(acc); err != nil {
		return err
	}

	a.logger.Info().
		Str("func", "Agent.Add").
		Str("account", acc.ShortName).
		Int("loaded", a.accounts.Len()).
		Msg("account loaded")
	return nil
}

// Use runs fn with the plaintext account named shortName and memory-wraps it
// again afterwards, whatever fn returns. fn must not keep the account.
func (a *Agent) Use(shortName string, fn func(*models.Account) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateLocked {
		return ErrAgentLocked
	}

	stored := a.accounts.FindByShortName(shortName)
	if stored == nil {
		return fmt.Errorf("%w: %s", store.ErrAccountNotFound, shortName)
	}
	acc, err := a.accounts.Lookup(stored.Identity())
	if err != nil {
		return err
	}

	fnErr := fn(acc)
	if err = a.accounts.Upsert(acc); err != nil {
		// a record that cannot be re-wrapped must not stay in plain text
		_ = a.accounts.Remove(acc.Identity())
		return errors.Join(fnErr, err)
	}
	return fnErr
}

// Remove destroys the loaded account named shortName.
func (a *Agent) Remove(shortName string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateLocked {
		return ErrAgentLocked
	}

	acc := a.accounts.FindByShortName(shortName)
	if acc == nil {
		return fmt.Errorf("%w: %s", store.ErrAccountNotFound, shortName)
	}
	return a.accounts.Remove(acc.Identity())
}

// Loaded returns the identities of the loaded accounts. It works in both
// states since identities are never encrypted.
func (a *Agent) Loaded() []models.Identity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.accounts.Identities()
}

// Lock wraps every loaded account in the lock layer under password.
func (a *Agent) Lock(password []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateLocked {
		return ErrAgentLocked
	}

	digest := lockDigest(password)
	defer memguard.WipeBytes(digest)

	hash, err := bcrypt.GenerateFromPassword(digest, a.hashCost)
	if err != nil {
		return fmt.Errorf("hash lock password: %w", err)
	}
	if err = a.lock.Lock(a.accounts.Snapshot(), password); err != nil {
		return err
	}

	a.state = StateLocked
	a.lockHash = hash
	a.failedUnlocks = 0
	a.logger.Info().
		Str("func", "Agent.Lock").
		Int("accounts", a.accounts.Len()).
		Msg("agent locked")
	return nil
}

// Unlock removes the lock layer. A password that does not match the lock
// password is rejected before any account is touched.
func (a *Agent) Unlock(password []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateLocked {
		return ErrAgentNotLocked
	}

	digest := lockDigest(password)
	defer memguard.WipeBytes(digest)

	if err := bcrypt.CompareHashAndPassword(a.lockHash, digest); err != nil {
		a.failedUnlocks++
		a.logger.Warn().
			Str("func", "Agent.Unlock").
			Int("failed_attempts", a.failedUnlocks).
			Msg("wrong lock password")
		return fmt.Errorf("%w: lock password mismatch", envelope.ErrWrongPassword)
	}

	if err := a.lock.Unlock(a.accounts.Snapshot(), password); err != nil {
		a.failedUnlocks++
		a.logger.Err(err).
			Str("func", "Agent.Unlock").
			Msg("failed to unlock accounts")
		return err
	}

	a.state = StateUnlocked
	memguard.WipeBytes(a.lockHash)
	a.lockHash = nil
	a.failedUnlocks = 0
	a.logger.Info().
		Str("func", "Agent.Unlock").
		Int("accounts", a.accounts.Len()).
		Msg("agent unlocked")
	return nil
}

// FailedUnlocks returns the number of failed unlock attempts since the agent
// was last locked.
func (a *Agent) FailedUnlocks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failedUnlocks
}

// EvictExpired destroys accounts past their lifetime. Lifetimes are not
// encrypted, so eviction also runs while locked.
func (a *Agent) EvictExpired() []models.Identity {
	a.mu.Lock()
	defer a.mu.Unlock()

	evicted := a.accounts.EvictExpired(a.now())
	for _, id := range evicted {
		a.logger.Info().
			Str("func", "Agent.EvictExpired").
			Str("account", id.ShortName).
			Msg("account lifetime ended")
	}
	return evicted
}

// Close destroys every loaded account.
func (a *Agent) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.accounts.Clear()
	memguard.WipeBytes(a.lockHash)
	a.lockHash = nil
}

// lockDigest fits passwords of any length into bcrypt's 72-byte input limit.
func lockDigest(password []byte) []byte {
	sum := sha256.Sum256(password)
	defer memguard.WipeBytes(sum[:])
	out := make([]byte, base64.RawStdEncoding.EncodedLen(len(sum)))
	base64.RawStdEncoding.Encode(out, sum[:])
	return out
}
