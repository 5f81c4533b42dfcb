package session

import (
	"context"
	"time"

	"storefront/platform/logger"
)

// Sweeper periodically evicts idle sessions from a store.
type Sweeper struct {
	store    *Store
	interval time.Duration
	log      *logger.Logger
}

// NewSweeper creates a sweeper. A non-positive interval defaults to one minute.
func NewSweeper(store *Store, interval time.Duration, log *logger.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{store: store, interval: interval, log: log}
}

// Run sweeps on every tick until ctx is done.
func (w *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *Sweeper) sweep() {
	removed := w.store.Sweep(w.store.now())
	if removed > 0 {
		w.log.Info("cart sessions expired", "removed", removed, "remaining", w.store.Len())
	}
}
