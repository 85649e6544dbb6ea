package session

import "time"

// Session represents an authenticated user session on the client.
// It is a value: once started it is never mutated, only replaced.
type Session struct {
	UserID      string
	DisplayName string
	AccessToken string
	IssuedAt    time.Time
}

// Valid reports whether the session carries the minimum required fields.
func (s Session) Valid() bool {
	return s.UserID != "" && s.AccessToken != ""
}

// EventKind identifies a session lifecycle transition.
type EventKind string

const (
	// EventStarted is published when a user becomes authenticated.
	EventStarted EventKind = "started"
	// EventEnded is published when the session ends (logout or credential rejection).
	EventEnded EventKind = "ended"
)

// Event describes a session lifecycle transition. For EventEnded the Session
// field holds the session that just ended.
type Event struct {
	Kind    EventKind
	Session Session
}
