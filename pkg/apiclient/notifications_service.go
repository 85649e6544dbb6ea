package apiclient

import (
	"context"
	"net/url"

	"github.com/facexd/facexd-go/pkg/notifications"
)

// NotificationsService talks to the remote notification endpoints.
// It implements notifications.Service.
type NotificationsService struct {
	client *Client
}

// List returns the user's full notification list in server order.
func (s *NotificationsService) List(ctx context.Context) ([]notifications.Notification, error) {
	var out struct {
		Notifications []notifications.Notification `json:"notifications"`
	}
	if err := s.client.get(ctx, "/api/v1/notifications", &out); err != nil {
		return nil, err
	}
	if out.Notifications == nil {
		out.Notifications = []notifications.Notification{}
	}
	return out.Notifications, nil
}

// UnreadCount returns the authoritative unread counter.
func (s *NotificationsService) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := s.client.get(ctx, "/api/v1/notifications/unread-count", &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// MarkRead marks a single notification as read.
func (s *NotificationsService) MarkRead(ctx context.Context, id string) error {
	return s.client.put(ctx, "/api/v1/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

// MarkAllRead marks every notification as read.
func (s *NotificationsService) MarkAllRead(ctx context.Context) error {
	return s.client.put(ctx, "/api/v1/notifications/read-all", nil, nil)
}

// Delete removes a notification.
func (s *NotificationsService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/api/v1/notifications/"+url.PathEscape(id))
}
