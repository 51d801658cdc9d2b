package app

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/cumplesito/internal/mutation"
	"github.com/five82/cumplesito/internal/state"
)

const maxBackoff = 5 * time.Minute

// Refresher is the part of the mutation service the poller needs.
type Refresher interface {
	Refresh(ctx context.Context, gen uint64) error
}

var _ Refresher = (*mutation.Service)(nil)

// StartPoller launches a background goroutine that refetches the viewed
// wishlist every interval so changes made by other visitors show up. After
// failures it backs off exponentially. It returns immediately; a
// non-positive interval disables polling.
func StartPoller(ctx context.Context, store *state.Store, refresher Refresher, interval time.Duration, log logrus.FieldLogger) {
	if interval <= 0 {
		return
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			failures := refreshOnce(ctx, store, refresher, log)
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// refreshOnce refreshes the open view, if any, and returns the current run of
// consecutive failures.
func refreshOnce(ctx context.Context, store *state.Store, refresher Refresher, log logrus.FieldLogger) int {
	snap := store.Snapshot()
	if snap.WishlistID == "" || snap.NotFound {
		return 0
	}
	err := refresher.Refresh(ctx, snap.Generation)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, mutation.ErrStale), errors.Is(err, context.Canceled):
		return 0
	}
	failures := store.Snapshot().ConsecutiveFailures
	log.WithError(err).WithFields(logrus.Fields{
		"wishlist_id": snap.WishlistID,
		"failures":    failures,
	}).Warn("background refresh failed")
	return failures
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
