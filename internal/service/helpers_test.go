package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-token-agent/internal/crypto"
	"github.com/MKhiriev/go-token-agent/internal/envelope"
	"github.com/MKhiriev/go-token-agent/internal/secret"
	"github.com/MKhiriev/go-token-agent/models"
)

const testVersion = "2.1.0"

func newTestCipher() crypto.PasswordCipher {
	return crypto.NewPasswordCipherWithParams(crypto.Params{Time: 1, Memory: 64, Threads: 1})
}

func newTestCodec() envelope.EnvelopeCodec {
	return envelope.NewCodec(newTestCipher(), testVersion)
}

// passwords returns a PromptPassword implementation answering with each
// password in turn, a fresh buffer every time.
func passwords(pws ...string) func(context.Context, string) (*secret.Buffer, error) {
	i := 0
	return func(context.Context, string) (*secret.Buffer, error) {
		pw := pws[min(i, len(pws)-1)]
		i++
		return secret.FromString(pw), nil
	}
}

func testAccount(name string) *models.Account {
	acc := models.NewAccount(name, "https://"+name+".example.com")
	acc.AccessToken = models.NewField([]byte("access-" + name))
	acc.RefreshToken = models.NewField([]byte("refresh-" + name))
	acc.ClientID = models.NewField([]byte("client-" + name))
	acc.ClientSecret = models.NewField([]byte("secret-" + name))
	return acc
}

func encodeLines(t *testing.T, codec envelope.EnvelopeCodec, plain, pw string) []string {
	t.Helper()
	text, err := codec.EncodeWithVersion([]byte(plain), []byte(pw))
	require.NoError(t, err)
	return splitLines(text)
}

func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	return append(lines, text[start:])
}
