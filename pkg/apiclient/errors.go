package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidBaseURL is returned when the configured base URL is unusable
	ErrInvalidBaseURL = errors.New("invalid API base URL")

	// ErrUnauthenticated is returned when the server rejects the credential
	ErrUnauthenticated = errors.New("credential rejected by server")

	// ErrRequestRejected is returned for non-auth 4xx responses
	ErrRequestRejected = errors.New("request rejected by server")

	// ErrServerError is returned for 5xx responses
	ErrServerError = errors.New("server error")

	// ErrTimeout is returned when the per-request deadline expires
	ErrTimeout = errors.New("request timed out")

	// ErrUnavailable is returned when the request cannot reach the server
	ErrUnavailable = errors.New("server unreachable")

	// ErrInvalidResponse is returned when a success response cannot be decoded
	ErrInvalidResponse = errors.New("invalid response body")
)

// APIError is the decoded error body of a rejected request.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, msg)
}
