package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-token-agent/internal/logger"
)

// EvictionWorker periodically evicts accounts whose lifetime has ended.
type EvictionWorker struct {
	evictor  Evictor
	interval time.Duration
	logger   *logger.Logger
}

// NewEvictionWorker creates an [EvictionWorker] that calls evictor every
// interval. If interval is zero or negative it defaults to one minute.
func NewEvictionWorker(evictor Evictor, interval time.Duration, logger *logger.Logger) *EvictionWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &EvictionWorker{evictor: evictor, interval: interval, logger: logger}
}

// Run implements [Worker].
func (w *EvictionWorker) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if evicted := w.evictor.EvictExpired(); len(evicted) > 0 {
				w.logger.Debug().
					Str("func", "EvictionWorker.Run").
					Int("evicted", len(evicted)).
					Msg("evicted expired accounts")
			}
		}
	}
}
