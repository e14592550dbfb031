// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ipc

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/box"

	"github.com/MKhiriev/go-token-agent/internal/crypto"
)

// KeyPair is a Curve25519 key pair used to agree on the IPC shared key.
type KeyPair struct {
	Public  *[crypto.KeySize]byte
	Private *[crypto.KeySize]byte
}

// GenerateKeyPair creates a fresh key pair for one side of the channel.
func GenerateKeyPair() (KeyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate key pair: %w", err)
	}
	return KeyPair{Public: pub, Private: priv}, nil
}

// SharedKey derives the symmetric key both peers use with [Codec]. Each side
// calls it with the other side's public key and its own private key.
func SharedKey(peerPublic, ownPrivate *[crypto.KeySize]byte) (*[crypto.KeySize]byte, error) {
	if peerPublic == nil || ownPrivate == nil {
		return nil, fmt.Errorf("%w: key pair", ErrArgumentMissing)
	}
	var shared [crypto.KeySize]byte
	box.Precompute(&shared, peerPublic, ownPrivate)
	return &shared, nil
}
