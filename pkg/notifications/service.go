package notifications

import "context"

// Service is the remote notification contract consumed by the Store.
// The API client provides the production implementation.
type Service interface {
	// List returns the user's full notification list in server order
	// (newest first).
	List(ctx context.Context) ([]Notification, error)

	// UnreadCount returns the authoritative number of unread notifications.
	UnreadCount(ctx context.Context) (int, error)

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead marks every notification as read.
	MarkAllRead(ctx context.Context) error

	// Delete removes a notification.
	Delete(ctx context.Context, id string) error
}
