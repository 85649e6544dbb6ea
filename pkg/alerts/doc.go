// Package alerts delivers transient user-visible messages (toasts) from
// background client operations to UI consumers.
//
// A Hub fans alerts out to any number of subscribers over buffered channels.
// Publishing never blocks: when a subscriber's buffer is full the alert is
// dropped for that subscriber, since a stale toast is worthless by the time a
// slow consumer would drain it.
//
// Usage:
//
//	hub := alerts.NewHub(16)
//	defer hub.Close()
//
//	go func() {
//	    for a := range hub.Subscribe(ctx) {
//	        showToast(a.Level, a.Message)
//	    }
//	}()
//
//	hub.Publish(alerts.Error("Failed to load notifications"))
package alerts
