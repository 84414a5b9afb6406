package workflow

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ADAPortal/models"
)

// Reloader collapses timer-driven polling and user-triggered refreshes
// of the admin updates snapshot into one idempotent reload. Concurrent
// callers share a single in-flight fetch instead of stacking requests.
type Reloader struct {
	fetch func(context.Context) ([]models.Update, error)

	mu        sync.Mutex
	inflight  chan struct{}
	snapshot  []models.Update
	fetchedAt time.Time
	lastErr   error
}

func NewReloader(fetch func(context.Context) ([]models.Update, error)) *Reloader {
	return &Reloader{fetch: fetch}
}

// Reload refreshes the snapshot from upstream. If a fetch is already
// in flight the caller waits for it and shares its result. A failed
// fetch keeps the previous snapshot and returns the error.
func (r *Reloader) Reload(ctx context.Context) ([]models.Update, error) {
	r.mu.Lock()
	if r.inflight != nil {
		done := r.inflight
		r.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.snapshot, r.lastErr
	}

	done := make(chan struct{})
	r.inflight = done
	r.mu.Unlock()

	updates, err := r.fetch(ctx)

	r.mu.Lock()
	if err == nil {
		r.snapshot = updates
		r.fetchedAt = time.Now()
	}
	r.lastErr = err
	r.inflight = nil
	close(done)
	snapshot, lastErr := r.snapshot, r.lastErr
	r.mu.Unlock()

	return snapshot, lastErr
}

// Snapshot returns the last successful fetch without touching
// upstream.
func (r *Reloader) Snapshot() ([]models.Update, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot, r.fetchedAt
}

// Start polls upstream on a fixed interval until the context ends.
func (r *Reloader) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := r.Reload(ctx); err != nil {
					log.Printf("updates poll failed: %v", err)
				}
			}
		}
	}()
}
