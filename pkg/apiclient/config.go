package apiclient

import "time"

// DefaultRequestTimeout bounds every API request unless overridden.
const DefaultRequestTimeout = 30 * time.Second

// Config holds API client configuration
type Config struct {
	// BaseURL is the API origin, e.g. https://api.facexd.example
	BaseURL string `env:"FACEXD_API_BASE_URL,required"`

	// RequestTimeout is the per-request deadline (default: 30s)
	RequestTimeout time.Duration `env:"FACEXD_HTTP_TIMEOUT" envDefault:"30s"`

	// UserAgent overrides the default User-Agent header
	UserAgent string `env:"FACEXD_USER_AGENT"`
}

// NewFromConfig creates a new Client from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	configOpts := []Option{
		WithTimeout(cfg.RequestTimeout),
	}
	if cfg.UserAgent != "" {
		configOpts = append(configOpts, WithUserAgent(cfg.UserAgent))
	}
	configOpts = append(configOpts, opts...)

	return New(cfg.BaseURL, configOpts...)
}
