// Package apiclient is the HTTP client for the Face XD REST API.
//
// A Client owns a pooled http.Client and exposes one service struct per API
// area (Auth, Notifications, Posts, Friends, Users). Requests automatically
// carry the current bearer credential, supplied by a TokenSource, plus a
// generated X-Request-ID for server-side correlation.
//
// # Error taxonomy
//
// Every non-2xx response and transport failure maps to a sentinel error that
// callers can test with errors.Is:
//
//   - ErrUnauthenticated: the server rejected the credential (401). The
//     configured unauthenticated handler fires so the host can end the
//     session and route to login.
//   - ErrRequestRejected: any other 4xx; the decoded API error body is
//     wrapped and available via errors.As.
//   - ErrServerError: 5xx responses.
//   - ErrTimeout: the per-request deadline expired.
//   - ErrUnavailable: the network request itself failed.
//
// # Usage
//
//	api, err := apiclient.New("https://api.facexd.example",
//	    apiclient.WithTokenSource(sessions),
//	    apiclient.WithUnauthenticatedHandler(sessions.End),
//	)
//	if err != nil {
//	    // handle error
//	}
//
//	feed, err := api.Posts.Feed(ctx, 1, 20)
package apiclient
