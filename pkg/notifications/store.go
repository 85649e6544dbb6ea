package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/facexd/facexd-go/pkg/alerts"
	"github.com/facexd/facexd-go/pkg/logger"
)

// DefaultPollInterval is the period of both background pollers.
const DefaultPollInterval = 30 * time.Second

// Store is the session-scoped local mirror of the remote notification list.
// It is shared by all UI consumers of a session; consumers read via Snapshot
// and mutate only through the store's operations. A mutex serializes all
// state changes.
type Store struct {
	svc      Service
	hub      *alerts.Hub
	log      *slog.Logger
	interval time.Duration

	mu      sync.Mutex
	bound   bool
	epoch   uint64 // advanced on every bind and unbind; guards late results
	items   []Notification
	unread  int
	loading bool
	cancel  context.CancelFunc
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for the Store.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithAlerts sets the hub used to surface user-visible failures and
// confirmations. Without a hub the store only logs.
func WithAlerts(hub *alerts.Hub) Option {
	return func(s *Store) {
		s.hub = hub
	}
}

// WithPollInterval overrides the period of both background pollers.
// Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.interval = d
		}
	}
}

// New creates an unbound store backed by the given remote service.
func New(svc Service, opts ...Option) (*Store, error) {
	if svc == nil {
		return nil, ErrServiceNil
	}

	s := &Store{
		svc:      svc,
		log:      slog.Default(),
		interval: DefaultPollInterval,
		items:    []Notification{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Snapshot is a point-in-time copy of the store state, safe to read while
// the store keeps changing underneath.
type Snapshot struct {
	Notifications []Notification
	UnreadCount   int
	Loading       bool
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Notification, len(s.items))
	copy(items, s.items)

	return Snapshot{
		Notifications: items,
		UnreadCount:   s.unread,
		Loading:       s.loading,
	}
}

// Bound reports whether the store is currently bound to a session.
func (s *Store) Bound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bound
}

// Refresh fetches the full notification list and replaces local state with
// the response verbatim; the unread counter is recomputed from the fetched
// list. Without an active binding this is a no-op. On failure the previous
// state stays in place (stale but available) and the error is surfaced as an
// alert; there is no automatic retry within the call.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if !s.bound {
		s.mu.Unlock()
		return nil
	}
	epoch := s.epoch
	s.loading = true
	s.mu.Unlock()

	// The loading flag must clear on every path, but only for the binding
	// that set it.
	defer func() {
		s.mu.Lock()
		if s.epoch == epoch {
			s.loading = false
		}
		s.mu.Unlock()
	}()

	list, err := s.svc.List(ctx)
	if err != nil {
		s.log.LogAttrs(ctx, slog.LevelWarn, "Failed to refresh notification list", logger.Error(err))
		s.alert(alerts.Error("Failed to load notifications"))
		return fmt.Errorf("refresh notifications: %w", err)
	}

	// Unknown types collapse to the generic category on ingest so consumers
	// never see an open set.
	unread := 0
	for i := range list {
		list[i].Type = list[i].Type.Normalize()
		if !list[i].Read {
			unread++
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		// The binding that started this fetch is gone; drop the result.
		return nil
	}
	s.items = list
	s.unread = unread
	return nil
}

// SyncUnreadCount fetches just the authoritative unread count and overwrites
// the local counter, correcting drift between full refreshes. Failures are
// logged but never surfaced to the user.
func (s *Store) SyncUnreadCount(ctx context.Context) error {
	s.mu.Lock()
	if !s.bound {
		s.mu.Unlock()
		return nil
	}
	epoch := s.epoch
	s.mu.Unlock()

	count, err := s.svc.UnreadCount(ctx)
	if err != nil {
		s.log.LogAttrs(ctx, slog.LevelDebug, "Failed to sync unread count", logger.Error(err))
		return fmt.Errorf("sync unread count: %w", err)
	}
	if count < 0 {
		count = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return nil
	}
	s.unread = count
	return nil
}

func (s *Store) alert(a alerts.Alert) {
	if s.hub != nil {
		s.hub.Publish(a)
	}
}

// decrementUnread lowers the unread counter by one, floored at zero.
// Callers must hold s.mu.
func (s *Store) decrementUnread() {
	if s.unread > 0 {
		s.unread--
	}
}
