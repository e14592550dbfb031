// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secret provides a scoped buffer for transient sensitive bytes such
// as passwords and decrypted plaintexts.
//
// A [Buffer] owns its bytes. Callers create it right after the secret comes
// into existence and defer [Buffer.Destroy], so the bytes are zeroed on every
// return path, including failures:
//
//	pw := secret.New(raw)
//	defer pw.Destroy()
package secret

import (
	"github.com/awnumar/memguard"
)

// Buffer holds sensitive bytes until it is destroyed. A nil *Buffer is valid
// and behaves as an absent secret.
type Buffer struct {
	data      []byte
	destroyed bool
}

// New takes ownership of b. The caller must not use b afterwards except
// through the returned buffer.
func New(b []byte) *Buffer {
	return &Buffer{data: b}
}

// FromString copies s into a new buffer. The string itself cannot be wiped,
// so this is meant for values that are already public to the caller, such as
// command-line arguments.
func FromString(s string) *Buffer {
	return New([]byte(s))
}

// Clone copies b into a new buffer, leaving b untouched.
func Clone(b []byte) *Buffer {
	c := make([]byte, len(b))
	copy(c, b)
	return New(c)
}

// Bytes returns the underlying bytes, or nil when the buffer is nil or has
// been destroyed.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.destroyed {
		return nil
	}
	return b.data
}

// Len returns the number of bytes held by the buffer.
func (b *Buffer) Len() int {
	return len(b.Bytes())
}

// IsSet reports whether the buffer exists and has not been destroyed.
// An empty but live buffer is set.
func (b *Buffer) IsSet() bool {
	return b != nil && !b.destroyed
}

// Detach returns the bytes and transfers their ownership to the caller; the
// buffer is left destroyed without wiping them.
func (b *Buffer) Detach() []byte {
	if !b.IsSet() {
		return nil
	}
	data := b.data
	b.data = nil
	b.destroyed = true
	return data
}

// Destroy zeroes the bytes. It is safe to call more than once and on nil.
func (b *Buffer) Destroy() {
	if b == nil || b.destroyed {
		return
	}
	memguard.WipeBytes(b.data)
	b.data = nil
	b.destroyed = true
}

// Use runs fn with a buffer that owns b and destroys it once fn returns.
func Use(b []byte, fn func(*Buffer) error) error {
	buf := New(b)
	defer buf.Destroy()
	return fn(buf)
}
