package notifications

import "errors"

// Common errors
var (
	// ErrServiceNil is returned when a nil remote service is provided
	ErrServiceNil = errors.New("notification service cannot be nil")

	// ErrNotBound is returned when a mutation is attempted without an
	// active session binding
	ErrNotBound = errors.New("notification store is not bound to a session")
)
