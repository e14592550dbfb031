// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-token-agent/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Evictor removes accounts whose lifetime has ended.
type Evictor interface {
	EvictExpired() []models.Identity
}
