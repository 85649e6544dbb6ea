package notifications

import (
	"context"
	"log/slog"
	"time"
)

// Session binding: the store moves between exactly two states. Unbound means
// no authenticated user; the cache is empty and no timers run. Bound means a
// session is active, both pollers run, and the cache tracks the server.

// Bind transitions the store to the bound state: local state is reset, the
// epoch advances, both pollers start on the configured interval, and an
// immediate full fetch fires rather than waiting for the first tick. The
// pollers stop when Unbind is called or ctx is cancelled, whichever comes
// first. Binding an already-bound store is a no-op.
func (s *Store) Bind(ctx context.Context) {
	s.mu.Lock()
	if s.bound {
		s.mu.Unlock()
		return
	}
	s.epoch++
	s.bound = true
	s.items = []Notification{}
	s.unread = 0
	s.loading = false

	pollCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	interval := s.interval
	s.mu.Unlock()

	s.log.LogAttrs(ctx, slog.LevelDebug, "notification store bound",
		slog.Duration("poll_interval", interval))

	go s.pollList(pollCtx, interval)
	go s.pollUnreadCount(pollCtx, interval)
}

// Unbind transitions the store to the unbound state: both pollers are
// cancelled and local state resets to empty. Any fetch still in flight
// resolves against a stale epoch and is discarded, so nothing can write into
// the store after teardown. Unbinding an unbound store is a no-op.
func (s *Store) Unbind() {
	s.mu.Lock()
	if !s.bound {
		s.mu.Unlock()
		return
	}
	s.bound = false
	s.epoch++
	cancel := s.cancel
	s.cancel = nil
	s.items = []Notification{}
	s.unread = 0
	s.loading = false
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	s.log.Debug("notification store unbound")
}

func (s *Store) pollList(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Fetch immediately on bind; errors are already logged and alerted.
	_ = s.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Refresh(ctx)
		}
	}
}

// pollUnreadCount runs on its own timer, deliberately decoupled from the
// list poller. No ordering holds between the two.
func (s *Store) pollUnreadCount(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.SyncUnreadCount(ctx)
		}
	}
}
