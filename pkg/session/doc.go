// Package session holds the client-side authenticated session: the signed-in
// user's identity and the bearer credential attached to API requests.
//
// A Manager owns at most one current Session. Start replaces the current
// session, End clears it, and both publish lifecycle events so that
// session-bound components (the notification store, navigation guards) can
// react. The Manager implements the transport's TokenSource, so the API
// client always sees the live credential without extra plumbing.
//
// Usage:
//
//	mgr := session.NewManager()
//	api, err := apiclient.New(baseURL, apiclient.WithTokenSource(mgr))
//	if err != nil {
//	    // handle error
//	}
//
//	go func() {
//	    for ev := range mgr.Subscribe(ctx) {
//	        switch ev.Kind {
//	        case session.EventStarted:
//	            store.Bind(ctx)
//	        case session.EventEnded:
//	            store.Unbind()
//	        }
//	    }
//	}()
package session
