package session

import "errors"

var (
	// ErrInvalidSession indicates a session without a user ID or credential
	ErrInvalidSession = errors.New("session.invalid")

	// ErrNoSession indicates no session is currently active
	ErrNoSession = errors.New("session.not_found")
)
