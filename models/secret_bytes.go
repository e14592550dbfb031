package models

import (
	"errors"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/awnumar/memguard"
)

// ErrMalformedSecret is returned when a secret is not a valid JSON string.
var ErrMalformedSecret = errors.New("malformed secret string")

// SecretBytes is a secret JSON string kept as bytes so it can be wiped.
//
// Decoding unescapes straight into a buffer owned by the value and encoding
// escapes straight from it; no Go string ever holds the secret.
type SecretBytes []byte

// Wipe zeroes the bytes in place.
func (s SecretBytes) Wipe() {
	memguard.WipeBytes(s)
}

// MarshalJSON implements [json.Marshaler].
func (s SecretBytes) MarshalJSON() ([]byte, error) {
	return appendSecret(make([]byte, 0, quotedCap(s)), s), nil
}

// UnmarshalJSON implements [json.Unmarshaler]. A previous value is wiped.
func (s *SecretBytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		s.Wipe()
		*s = nil
		return nil
	}
	b, err := unquoteSecret(data)
	if err != nil {
		return err
	}
	s.Wipe()
	*s = b
	return nil
}

const hexDigits = "0123456789abcdef"

// quotedCap is an upper bound of the quoted length of s, so appending never
// reallocates and leaves no stray partial copy behind.
func quotedCap(s []byte) int {
	return 2 + 6*len(s)
}

func appendSecret(dst, s []byte) []byte {
	dst = append(dst, '"')
	for _, c := range s {
		switch {
		case c == '"' || c == '\\':
			dst = append(dst, '\\', c)
		case c < 0x20:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}

// unquoteSecret decodes a quoted JSON string into a new buffer. The unquoted
// form is never longer than the quoted one.
func unquoteSecret(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return nil, ErrMalformedSecret
	}
	in := data[1 : len(data)-1]
	out := make([]byte, 0, len(in))

	fail := func() ([]byte, error) {
		memguard.WipeBytes(out[:cap(out)])
		return nil, ErrMalformedSecret
	}

	for i := 0; i < len(in); {
		c := in[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		if i+1 >= len(in) {
			return fail()
		}
		switch e := in[i+1]; e {
		case '"', '\\', '/':
			out = append(out, e)
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			r, ok := hexRune(in[i+2:])
			if !ok {
				return fail()
			}
			i += 6
			if utf16.IsSurrogate(r) {
				r2, ok := rune(-1), false
				if i+1 < len(in) && in[i] == '\\' && in[i+1] == 'u' {
					r2, ok = hexRune(in[i+2:])
				}
				if dec := utf16.DecodeRune(r, r2); ok && dec != unicode.ReplacementChar {
					r = dec
					i += 6
				} else {
					r = unicode.ReplacementChar
				}
			}
			out = utf8.AppendRune(out, r)
			continue
		default:
			return fail()
		}
		i += 2
	}
	return out, nil
}

// hexRune parses the four hex digits at the start of b.
func hexRune(b []byte) (rune, bool) {
	if len(b) < 4 {
		return 0, false
	}
	var r rune
	for _, c := range b[:4] {
		switch {
		case '0' <= c && c <= '9':
			c -= '0'
		case 'a' <= c && c <= 'f':
			c = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			c = c - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(c)
	}
	return r, true
}
