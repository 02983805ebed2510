package openapi

import (
	"fmt"
	"time"

	"github.com/skillsenselab/openapi-client/httpclient"
	"github.com/skillsenselab/openapi-client/signing"
	"github.com/skillsenselab/openapi-client/version"
)

// Signing scheme names accepted by Config.Scheme.
const (
	SchemeSimple = "simple"
	SchemePath   = "path"
)

const (
	defaultAuthHeaderName   = "token"
	defaultAuthHeaderFormat = "%s"
	defaultRefreshInterval  = 3600
)

// Config configures an OpenAPI client. Credentials apply to KeyClient,
// Token and the auth header fields to TokenClient, Refresh to TokenManager.
type Config struct {
	// BaseURL of the backend. Normalized to one trailing slash.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Credentials is the API key pair for the HMAC scheme.
	Credentials signing.Credentials `yaml:"credentials" mapstructure:"credentials"`

	// Scheme selects the canonicalization variant: "simple" (default)
	// or "path".
	Scheme string `yaml:"scheme" mapstructure:"scheme"`

	// Token is the static credential for the token scheme.
	Token string `yaml:"token" mapstructure:"token"`

	// AuthHeaderName is the header carrying the token. Defaults to "token".
	AuthHeaderName string `yaml:"auth_header_name" mapstructure:"auth_header_name"`

	// AuthHeaderFormat is a format template applied to the token
	// (e.g. "Bearer %s"). Defaults to "%s".
	AuthHeaderFormat string `yaml:"auth_header_format" mapstructure:"auth_header_format"`

	// Timeout bounds each request. Zero uses the transport default.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// ConnectTimeout bounds connection establishment.
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout"`

	// Proxy is an HTTP proxy in host:port or URL form.
	Proxy string `yaml:"proxy" mapstructure:"proxy"`

	// SkipTLSVerify disables server certificate verification.
	SkipTLSVerify bool `yaml:"skip_tls_verify" mapstructure:"skip_tls_verify"`

	// Headers are extra default headers for every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Refresh configures the token refresh manager.
	Refresh RefreshConfig `yaml:"refresh" mapstructure:"refresh"`
}

// RefreshConfig configures TokenManager.
type RefreshConfig struct {
	// URL is the refresh endpoint. Empty disables refreshing.
	URL string `yaml:"url" mapstructure:"url"`

	// IntervalSeconds is the minimum age before a token is considered
	// stale. Defaults to 3600.
	IntervalSeconds int64 `yaml:"interval_seconds" mapstructure:"interval_seconds"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Scheme == "" {
		c.Scheme = SchemeSimple
	}
	if c.AuthHeaderName == "" {
		c.AuthHeaderName = defaultAuthHeaderName
	}
	if c.AuthHeaderFormat == "" {
		c.AuthHeaderFormat = defaultAuthHeaderFormat
	}
	if c.Refresh.IntervalSeconds <= 0 {
		c.Refresh.IntervalSeconds = defaultRefreshInterval
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("openapi: base URL is required")
	}
	if c.Scheme != SchemeSimple && c.Scheme != SchemePath {
		return fmt.Errorf("openapi: scheme must be %q or %q (got: %s)", SchemeSimple, SchemePath, c.Scheme)
	}
	return nil
}

// newScheme builds the signing scheme selected by the configuration.
func (c *Config) newScheme() signing.Scheme {
	if c.Scheme == SchemePath {
		return signing.NewPathScheme()
	}
	return signing.NewSimpleScheme()
}

// httpConfig derives the transport configuration.
func (c *Config) httpConfig() httpclient.Config {
	headers := map[string]string{
		"User-Agent": version.UserAgent(),
		"Accept":     "application/json",
	}
	for k, v := range c.Headers {
		headers[k] = v
	}

	cfg := httpclient.Config{
		BaseURL:        c.BaseURL,
		Timeout:        c.Timeout,
		ConnectTimeout: c.ConnectTimeout,
		Proxy:          c.Proxy,
		Headers:        headers,
	}
	if c.SkipTLSVerify {
		cfg.TLS = &httpclient.TLSConfig{SkipVerify: true}
	}
	return cfg
}
