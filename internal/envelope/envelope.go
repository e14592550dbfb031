// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/MKhiriev/go-token-agent/internal/crypto"
	"github.com/MKhiriev/go-token-agent/internal/version"
)

// Envelope is a parsed cipher envelope. It is either [Legacy] or [Current];
// no other implementations exist.
type Envelope interface {
	// Sealed returns the raw parts handed to the password cipher.
	Sealed() crypto.Sealed
	isEnvelope()
}

// Legacy is an envelope written before [version.MinCurrentFormat]:
// "<cipher_len>:<salt_hex>:<nonce_hex>:<cipher_hex>".
type Legacy struct {
	CipherLen int
	Parts     crypto.Sealed
}

// Current is a current-generation envelope:
// "<cipher_len>:<salt_b64>:<nonce_b64>:<cipher_b64>", optionally followed by
// a version line.
type Current struct {
	CipherLen int
	Parts     crypto.Sealed
	// Version is the software version recorded in the version line, if any.
	Version *semver.Version
}

func (Legacy) isEnvelope()  {}
func (Current) isEnvelope() {}

// Sealed implements [Envelope].
func (l Legacy) Sealed() crypto.Sealed { return l.Parts }

// Sealed implements [Envelope].
func (c Current) Sealed() crypto.Sealed { return c.Parts }

// fieldEncoding decodes and encodes the non-length fields of one generation.
type fieldEncoding interface {
	DecodeString(string) ([]byte, error)
	EncodeToString([]byte) string
}

type hexEncoding struct{}

func (hexEncoding) DecodeString(s string) ([]byte, error) { return hex.DecodeString(s) }
func (hexEncoding) EncodeToString(b []byte) string        { return hex.EncodeToString(b) }

// Parse splits text into lines and parses them with [ParseLines].
func Parse(text string) (Envelope, error) {
	return ParseLines(splitLines(text))
}

// ParseLines parses a multi-line serialization. The first line holds the
// cipher; when there is more than one line the last one is the version line.
// A missing or unparseable version line means the envelope is legacy.
func ParseLines(lines []string) (Envelope, error) {
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrArgumentMissing
	}

	var v *semver.Version
	if len(lines) > 1 {
		v = version.ParseLine(lines[len(lines)-1])
	}
	return parseForVersion(lines[0], v)
}

// ParseWithVersion parses a single-line cipher whose writer version is known
// out of band. An empty or unparseable ver means legacy.
func ParseWithVersion(cipher, ver string) (Envelope, error) {
	if cipher == "" {
		return nil, ErrArgumentMissing
	}
	return parseForVersion(cipher, version.Parse(ver))
}

func parseForVersion(cipher string, v *semver.Version) (Envelope, error) {
	if version.IsCurrentFormat(v) {
		cipherLen, parts, err := parseFields(cipher, base64.StdEncoding)
		if err != nil {
			return nil, err
		}
		return Current{CipherLen: cipherLen, Parts: parts, Version: v}, nil
	}

	cipherLen, parts, err := parseFields(cipher, hexEncoding{})
	if err != nil {
		return nil, err
	}
	return Legacy{CipherLen: cipherLen, Parts: parts}, nil
}

// parseFields parses "<cipher_len>:<salt>:<nonce>:<cipher>".
func parseFields(cipher string, enc fieldEncoding) (int, crypto.Sealed, error) {
	fields := strings.SplitN(strings.TrimSpace(cipher), ":", 4)
	if len(fields) < 4 || fields[1] == "" || fields[2] == "" || fields[3] == "" {
		return 0, crypto.Sealed{}, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformedEnvelope, nonEmpty(fields))
	}

	cipherLen, err := strconv.Atoi(fields[0])
	if err != nil || cipherLen <= 0 {
		return 0, crypto.Sealed{}, fmt.Errorf("%w: invalid cipher length %q", ErrMalformedEnvelope, fields[0])
	}

	salt, err := enc.DecodeString(fields[1])
	if err != nil {
		return 0, crypto.Sealed{}, fmt.Errorf("%w: decode salt: %v", ErrMalformedEnvelope, err)
	}
	nonce, err := enc.DecodeString(fields[2])
	if err != nil {
		return 0, crypto.Sealed{}, fmt.Errorf("%w: decode nonce: %v", ErrMalformedEnvelope, err)
	}
	ciphertext, err := enc.DecodeString(fields[3])
	if err != nil {
		return 0, crypto.Sealed{}, fmt.Errorf("%w: decode cipher: %v", ErrMalformedEnvelope, err)
	}
	if len(ciphertext) != cipherLen {
		return 0, crypto.Sealed{}, fmt.Errorf("%w: cipher is %d bytes, header says %d", ErrMalformedEnvelope, len(ciphertext), cipherLen)
	}

	return cipherLen, crypto.Sealed{Ciphertext: ciphertext, Nonce: nonce, Salt: salt}, nil
}

func formatFields(sealed crypto.Sealed, enc fieldEncoding) string {
	return fmt.Sprintf("%d:%s:%s:%s",
		len(sealed.Ciphertext),
		enc.EncodeToString(sealed.Salt),
		enc.EncodeToString(sealed.Nonce),
		enc.EncodeToString(sealed.Ciphertext),
	)
}

func splitLines(text string) []string {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func nonEmpty(fields []string) int {
	n := 0
	for _, f := range fields {
		if f != "" {
			n++
		}
	}
	return n
}
