// Package config loads configuration for the client packages.
//
// Load fills an env-tagged struct from environment variables, reading a .env
// file first when one is present. LoadFile fills a yaml-tagged struct from a
// YAML file, which suits desktop and CLI hosts that ship a config file next to
// the binary.
//
// Example:
//
//	type ClientConfig struct {
//	    BaseURL string        `env:"FACEXD_API_BASE_URL,required" yaml:"base_url"`
//	    Timeout time.Duration `env:"FACEXD_HTTP_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
