package session

import (
	"context"
	"sync"
)

// subscriberBuffer is the per-subscriber event buffer. Lifecycle events are
// rare, so a small buffer is enough to absorb a start/end pair.
const subscriberBuffer = 4

// Manager owns the current session and publishes lifecycle events.
// All methods are safe for concurrent use.
type Manager struct {
	mu          sync.RWMutex
	current     *Session
	subscribers map[chan Event]struct{}
	cleanupWg   sync.WaitGroup
}

// NewManager creates a manager with no active session.
func NewManager() *Manager {
	return &Manager{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Start replaces the current session and publishes EventStarted.
// If another session is active it is ended first, so subscribers always see
// a balanced ended/started pair on user switch.
func (m *Manager) Start(s Session) error {
	if !s.Valid() {
		return ErrInvalidSession
	}

	m.mu.Lock()
	prev := m.current
	m.current = &s
	m.mu.Unlock()

	if prev != nil {
		m.publish(Event{Kind: EventEnded, Session: *prev})
	}
	m.publish(Event{Kind: EventStarted, Session: s})
	return nil
}

// End clears the current session and publishes EventEnded.
// Ending when no session is active is a no-op.
func (m *Manager) End() {
	m.mu.Lock()
	prev := m.current
	m.current = nil
	m.mu.Unlock()

	if prev != nil {
		m.publish(Event{Kind: EventEnded, Session: *prev})
	}
}

// Current returns the active session, or false when unauthenticated.
func (m *Manager) Current() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// Token returns the bearer credential of the active session.
// It satisfies the API client's TokenSource interface.
func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return "", false
	}
	return m.current.AccessToken, true
}

// Subscribe registers for lifecycle events. The subscription is removed and
// the channel closed when ctx is cancelled. Events are delivered best-effort:
// a subscriber that stops draining its channel misses events rather than
// blocking Start/End.
func (m *Manager) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, subscriberBuffer)

	m.mu.Lock()
	m.subscribers[ch] = struct{}{}
	m.mu.Unlock()

	if ctx.Done() != nil {
		m.cleanupWg.Add(1)
		go func() {
			defer m.cleanupWg.Done()
			<-ctx.Done()
			m.unsubscribe(ch)
		}()
	}

	return ch
}

func (m *Manager) publish(ev Event) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for ch := range m.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (m *Manager) unsubscribe(ch chan Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.subscribers[ch]; !ok {
		return
	}
	delete(m.subscribers, ch)
	close(ch)
}
