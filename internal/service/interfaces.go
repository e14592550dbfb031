package service

import (
	"context"

	"github.com/MKhiriev/go-token-agent/internal/secret"
	"github.com/MKhiriev/go-token-agent/models"
)

// CryptService decrypts envelopes with a caller-supplied or prompted password
// and manages encrypted files.
//
// A nil or destroyed password buffer means "not supplied": the user is
// prompted instead. Returned plaintext buffers are owned by the caller.
type CryptService interface {
	// DecryptWithRetry opens the envelope given as lines. A supplied password
	// gets exactly one attempt; otherwise the user is prompted up to the
	// configured number of times.
	DecryptWithRetry(ctx context.Context, lines []string, password *secret.Buffer) (*secret.Buffer, error)

	// DecryptFile opens the envelope stored in the file at path.
	DecryptFile(ctx context.Context, path string, password *secret.Buffer) (*secret.Buffer, error)

	// DecryptAgentFile opens the envelope stored under name in the agent
	// configuration directory.
	DecryptAgentFile(ctx context.Context, name string, password *secret.Buffer) (*secret.Buffer, error)

	// EncryptFile writes plaintext to path as a current envelope with a
	// version line.
	EncryptFile(ctx context.Context, path string, plaintext []byte, password *secret.Buffer) error

	// ReencryptFile rewrites the envelope at path in the current format,
	// under newPassword or, when it is not supplied, the old password.
	ReencryptFile(ctx context.Context, path string, password, newPassword *secret.Buffer) error
}

// AccountConfigService stores encrypted account configurations and turns
// them into loaded accounts.
type AccountConfigService interface {
	// Save encrypts secrets under password and stores them as shortName.
	Save(ctx context.Context, shortName, issuerURL string, secrets models.AccountSecrets, password *secret.Buffer) error
	// Load decrypts the configuration shortName into a new plaintext account.
	Load(ctx context.Context, shortName string, password *secret.Buffer) (*models.Account, error)
	// List returns the stored configurations; envelopes stay encrypted.
	List(ctx context.Context) ([]models.AccountConfig, error)
	// Delete removes the configuration shortName.
	Delete(ctx context.Context, shortName string) error
}
