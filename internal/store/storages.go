package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-token-agent/internal/config"
	"github.com/MKhiriev/go-token-agent/internal/logger"
)

// Storages groups the persistent stores of the agent.
type Storages struct {
	// AccountConfigs is the SQLite-backed repository of encrypted account
	// configurations.
	AccountConfigs AccountConfigRepository
	// Files reads and writes encrypted files in the configuration directory.
	Files EnvelopeFileStorage

	db *DB
}

// NewStorages opens the database named by cfg, runs pending migrations and
// wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AccountConfigs: NewAccountConfigRepository(db, logger),
		Files:          NewEnvelopeFileStorage(cfg.ConfigDir, logger),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
