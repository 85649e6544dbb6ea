package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/facexd/facexd-go/pkg/alerts"
	"github.com/facexd/facexd-go/pkg/logger"
)

// Mutations are not optimistic: local state changes only after the server
// confirms. A rejected mutation leaves the cache exactly as it was.

// MarkAsRead marks a single notification as read. On confirmation the local
// entry is flagged read and the unread counter drops by one if the entry was
// previously unread. Callers use the returned error to decide whether to
// proceed with navigation.
func (s *Store) MarkAsRead(ctx context.Context, id string) error {
	epoch, err := s.mutationEpoch()
	if err != nil {
		return err
	}

	if err := s.svc.MarkRead(ctx, id); err != nil {
		s.log.LogAttrs(ctx, slog.LevelWarn, "Failed to mark notification as read",
			logger.NotificationID(id), logger.Error(err))
		s.alert(alerts.Error("Failed to mark notification as read"))
		return fmt.Errorf("mark notification read: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return nil
	}
	for i := range s.items {
		if s.items[i].ID == id {
			if !s.items[i].Read {
				s.items[i].Read = true
				s.decrementUnread()
			}
			break
		}
	}
	return nil
}

// MarkAllAsRead marks every notification as read. On confirmation all local
// entries are flagged read and the unread counter resets to zero. Calling it
// again when everything is already read is harmless.
func (s *Store) MarkAllAsRead(ctx context.Context) error {
	epoch, err := s.mutationEpoch()
	if err != nil {
		return err
	}

	if err := s.svc.MarkAllRead(ctx); err != nil {
		s.log.LogAttrs(ctx, slog.LevelWarn, "Failed to mark all notifications as read", logger.Error(err))
		s.alert(alerts.Error("Failed to mark all notifications as read"))
		return fmt.Errorf("mark all notifications read: %w", err)
	}

	s.mu.Lock()
	if s.epoch == epoch {
		for i := range s.items {
			s.items[i].Read = true
		}
		s.unread = 0
	}
	s.mu.Unlock()

	s.alert(alerts.Success("All notifications marked as read"))
	return nil
}

// DeleteNotification removes a notification. On confirmation the entry is
// dropped from the local list; the unread counter drops by one only if the
// entry was still unread at removal time.
func (s *Store) DeleteNotification(ctx context.Context, id string) error {
	epoch, err := s.mutationEpoch()
	if err != nil {
		return err
	}

	if err := s.svc.Delete(ctx, id); err != nil {
		s.log.LogAttrs(ctx, slog.LevelWarn, "Failed to delete notification",
			logger.NotificationID(id), logger.Error(err))
		s.alert(alerts.Error("Failed to delete notification"))
		return fmt.Errorf("delete notification: %w", err)
	}

	s.mu.Lock()
	if s.epoch == epoch {
		for i, n := range s.items {
			if n.ID == id {
				// Read flag is inspected before removal so the counter
				// adjustment reflects the deleted entry's state.
				wasUnread := !n.Read
				s.items = append(s.items[:i], s.items[i+1:]...)
				if wasUnread {
					s.decrementUnread()
				}
				break
			}
		}
	}
	s.mu.Unlock()

	s.alert(alerts.Success("Notification deleted"))
	return nil
}

// mutationEpoch snapshots the current epoch for a mutation, rejecting
// mutations on an unbound store.
func (s *Store) mutationEpoch() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.bound {
		return 0, ErrNotBound
	}
	return s.epoch, nil
}
