package httpclient

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultTimeout        = 30 * time.Second
	defaultConnectTimeout = 10 * time.Second
)

// Config configures the HTTP client. Set once at construction; the client
// never mutates it afterwards.
type Config struct {
	// BaseURL is the base URL resolved against all request paths. It is
	// normalized to end with exactly one trailing slash, so relative paths
	// append and paths starting with "/" replace the base path.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds the whole request (connect + read). Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// ConnectTimeout bounds connection establishment. Defaults to 10s.
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout"`

	// Proxy is an HTTP proxy in host:port or URL form. Empty disables it.
	Proxy string `yaml:"proxy" mapstructure:"proxy"`

	// TLS configures TLS settings for the transport. Nil uses defaults.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Headers are default headers applied to all requests. Request headers
	// and auth headers override them on conflicting names.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields and normalizes the base URL.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}
	if c.BaseURL != "" {
		c.BaseURL = strings.TrimRight(c.BaseURL, "/") + "/"
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("httpclient: connect timeout must be positive")
	}
	return nil
}
