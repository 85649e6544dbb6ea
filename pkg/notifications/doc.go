// Package notifications maintains an eventually-consistent local mirror of a
// user's remote notification list, with periodic polling and non-optimistic
// mutations.
//
// # Architecture
//
// The package has three moving parts:
//
//   - Service: the remote contract (list, unread count, mark read, mark all
//     read, delete), implemented by the API client
//   - Store: the session-scoped local cache with its mutation operations
//   - pollers: two independent timers refreshing the full list and the
//     authoritative unread count while a session is bound
//
// # Consistency model
//
// Mutations are not optimistic: the store only touches local state after the
// server confirms a mutation, trading a perceptible delay for the guarantee
// that local state never diverges from a rejected mutation. A failed fetch
// leaves the previous list in place (stale but available).
//
// The list poller and the count poller are deliberately decoupled; between
// their ticks the unread counter may momentarily disagree with the count
// implied by the cached list. Consumers must tolerate this bounded drift.
//
// # Session binding
//
// A Store is Unbound until Bind is called, at which point state is reset,
// both pollers start, and an immediate fetch fires. Unbind cancels the
// pollers and resets state. Every bind and unbind advances an internal epoch;
// any in-flight result that resolves against a stale epoch is discarded, so a
// fetch that outlives its session can never write into a torn-down store.
//
// # Basic Usage
//
//	store, err := notifications.New(api.Notifications,
//	    notifications.WithAlerts(hub),
//	    notifications.WithPollInterval(30*time.Second),
//	)
//	if err != nil {
//	    // handle error
//	}
//
//	// On login:
//	store.Bind(ctx)
//
//	// Rendering:
//	snap := store.Snapshot()
//	render(snap.Notifications, snap.UnreadCount)
//
//	// User clicks a notification:
//	if err := store.MarkAsRead(ctx, id); err == nil {
//	    navigate(target)
//	}
//
//	// On logout:
//	store.Unbind()
package notifications
