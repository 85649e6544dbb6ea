package notifications

import "time"

// Config holds notification store configuration
type Config struct {
	// PollInterval is the period of both background pollers (default: 30s)
	PollInterval time.Duration `env:"FACEXD_NOTIFY_POLL_INTERVAL" envDefault:"30s"`
}

// DefaultConfig returns default store configuration
func DefaultConfig() Config {
	return Config{
		PollInterval: DefaultPollInterval,
	}
}

// NewFromConfig creates a new Store from the provided Config.
func NewFromConfig(svc Service, cfg Config, opts ...Option) (*Store, error) {
	configOpts := []Option{
		WithPollInterval(cfg.PollInterval),
	}
	configOpts = append(configOpts, opts...)

	return New(svc, configOpts...)
}
