// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/awnumar/memguard"
)

// ErrLayerOrder is returned when a wrap or unwrap would violate the
// memory-then-lock layering order of a [Field].
var ErrLayerOrder = errors.New("encryption layer order violated")

// Layer describes which encryption layers currently cover a [Field].
//
// The memory layer is always applied first and removed last; the lock layer
// sits on top of whatever state the field was in when the agent was locked.
type Layer uint8

const (
	// LayerPlain means the field holds plaintext.
	LayerPlain Layer = iota
	// LayerMemory means the field is wrapped by the process-local memory cipher only.
	LayerMemory
	// LayerLock means the field is wrapped by the lock password only.
	LayerLock
	// LayerBoth means the memory layer is wrapped again by the lock layer.
	LayerBoth
)

// String implements [fmt.Stringer].
func (l Layer) String() string {
	switch l {
	case LayerPlain:
		return "plain"
	case LayerMemory:
		return "memory"
	case LayerLock:
		return "lock"
	case LayerBoth:
		return "memory+lock"
	default:
		return fmt.Sprintf("layer(%d)", uint8(l))
	}
}

// WrapMemory returns the layer reached after applying the memory cipher.
// Only plaintext can be memory-wrapped.
func (l Layer) WrapMemory() (Layer, error) {
	if l != LayerPlain {
		return l, fmt.Errorf("%w: memory wrap on %s field", ErrLayerOrder, l)
	}
	return LayerMemory, nil
}

// UnwrapMemory returns the layer reached after removing the memory cipher.
// A field that is still lock-wrapped must be unlocked first.
func (l Layer) UnwrapMemory() (Layer, error) {
	if l != LayerMemory {
		return l, fmt.Errorf("%w: memory unwrap on %s field", ErrLayerOrder, l)
	}
	return LayerPlain, nil
}

// WrapLock returns the layer reached after applying the lock layer.
func (l Layer) WrapLock() (Layer, error) {
	switch l {
	case LayerPlain:
		return LayerLock, nil
	case LayerMemory:
		return LayerBoth, nil
	default:
		return l, fmt.Errorf("%w: lock wrap on %s field", ErrLayerOrder, l)
	}
}

// UnwrapLock returns the layer reached after removing the lock layer.
func (l Layer) UnwrapLock() (Layer, error) {
	switch l {
	case LayerLock:
		return LayerPlain, nil
	case LayerBoth:
		return LayerMemory, nil
	default:
		return l, fmt.Errorf("%w: lock unwrap on %s field", ErrLayerOrder, l)
	}
}

// Field is one secret value of an [Account] together with its layering state.
// The zero value is an empty plaintext field.
type Field struct {
	layer Layer
	value []byte
}

// NewField returns a plaintext field that takes ownership of value.
func NewField(value []byte) Field {
	return Field{layer: LayerPlain, value: value}
}

// Layer reports the encryption layers currently applied to the field.
func (f *Field) Layer() Layer {
	return f.layer
}

// Value returns the current bytes of the field. The slice is owned by the
// field and is wiped by [Field.Set] and [Field.Wipe].
func (f *Field) Value() []byte {
	return f.value
}

// Set replaces the field value and layer, wiping the previous bytes.
func (f *Field) Set(value []byte, layer Layer) {
	memguard.WipeBytes(f.value)
	f.value = value
	f.layer = layer
}

// Wipe zeroes the field bytes and resets it to an empty plaintext field.
func (f *Field) Wipe() {
	memguard.WipeBytes(f.value)
	f.value = nil
	f.layer = LayerPlain
}
