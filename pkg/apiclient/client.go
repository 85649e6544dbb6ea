package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/facexd/facexd-go/pkg/logger"
)

// TokenSource supplies the current bearer credential. The second return
// value is false when no user is authenticated, in which case requests go
// out without an Authorization header.
type TokenSource interface {
	Token() (string, bool)
}

// Client is the Face XD API client. Zero value is not usable; use New.
type Client struct {
	baseURL   string
	client    *http.Client
	tokens    TokenSource
	log       *slog.Logger
	timeout   time.Duration
	userAgent string

	// onUnauthenticated fires when the server rejects the credential so the
	// host application can end the session and route to login.
	onUnauthenticated func()

	// Service clients
	Auth          *AuthService
	Notifications *NotificationsService
	Posts         *PostsService
	Friends       *FriendsService
	Users         *UsersService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client, for proxies or testing.
// Nil clients are ignored.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.client = httpClient
		}
	}
}

// WithTokenSource sets the credential supplier.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger for the Client.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithUnauthenticatedHandler registers a callback invoked whenever the
// server answers 401.
func WithUnauthenticatedHandler(fn func()) Option {
	return func(c *Client) {
		c.onUnauthenticated = fn
	}
}

// New creates an API client for the given base URL.
// Connection pooling is sized for a single-user client talking to one host.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log:       slog.Default(),
		timeout:   DefaultRequestTimeout,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{client: c}
	c.Notifications = &NotificationsService{client: c}
	c.Posts = &PostsService{client: c}
	c.Friends = &FriendsService{client: c}
	c.Users = &UsersService{client: c}

	return c, nil
}

const defaultUserAgent = "facexd-go/1.0"

// do executes a request and decodes a JSON success body into out (when out
// is non-nil). Body, when non-nil, is marshaled to JSON.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	// Layer the per-request timeout on top of the caller's context so both
	// deadlines are respected.
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.LogAttrs(ctx, slog.LevelDebug, "api request",
		slog.String("method", method),
		slog.String("path", path),
		logger.Status(resp.StatusCode),
		logger.RequestID(requestID),
		logger.Duration(time.Since(start)),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		return nil
	}

	apiErr := c.decodeError(resp)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onUnauthenticated != nil {
			c.onUnauthenticated()
		}
		return fmt.Errorf("%w: %w", ErrUnauthenticated, apiErr)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %w", ErrServerError, apiErr)
	default:
		return fmt.Errorf("%w: %w", ErrRequestRejected, apiErr)
	}
}

// decodeError extracts the API error body, falling back to the status text.
// Bodies are capped at 64KB to bound memory on misbehaving servers.
func (c *Client) decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil || len(raw) == 0 {
		return apiErr
	}
	// Malformed bodies keep the status-only fallback.
	_ = json.Unmarshal(raw, apiErr)
	return apiErr
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
