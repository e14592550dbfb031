package store

import (
	"context"

	"github.com/MKhiriev/go-token-agent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountObfuscator applies and removes the memory-obfuscation layer of an
// account. Both methods must leave the account unchanged on error.
type AccountObfuscator interface {
	Wrap(acc *models.Account) error
	Unwrap(acc *models.Account) error
}

// AccountConfigRepository persists encrypted account configurations.
type AccountConfigRepository interface {
	// Save inserts cfg or replaces the configuration with the same short name.
	Save(ctx context.Context, cfg models.AccountConfig) error
	// Get returns the configuration named shortName or [ErrAccountConfigNotFound].
	Get(ctx context.Context, shortName string) (models.AccountConfig, error)
	// List returns every configuration ordered by short name.
	List(ctx context.Context) ([]models.AccountConfig, error)
	// Delete removes the configuration named shortName or returns
	// [ErrAccountConfigNotFound].
	Delete(ctx context.Context, shortName string) error
}

// EnvelopeFileStorage reads and writes encrypted files.
type EnvelopeFileStorage interface {
	// ReadLines returns the lines of the file at path.
	ReadLines(ctx context.Context, path string) ([]string, error)
	// WriteText replaces the content of the file at path.
	WriteText(ctx context.Context, path, text string) error
	// Path resolves a file name relative to the agent configuration directory.
	Path(name string) (string, error)
}
