package transport

import (
	"fmt"
	"strings"
	"time"

	"github.com/sdkpipe/sdkpipe/version"
)

const defaultTimeout = 30 * time.Second

// Config configures the HTTP transport.
type Config struct {
	// BaseURL is prepended to relative request URLs. Absolute request URLs
	// are sent as-is.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is sent as the User-Agent header when the request carries
	// none of its own. Defaults to the SDK version string.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// EnableHTTP2 enables HTTP/2 on the underlying transport.
	EnableHTTP2 bool `yaml:"enable_http2" mapstructure:"enable_http2"`

	// MaxIdleConns bounds the idle connection pool. Zero keeps the
	// net/http default.
	MaxIdleConns int `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`

	// TLS configures TLS settings for the transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("transport: timeout must be positive")
	}
	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("transport: base_url must start with http:// or https:// (got: %s)", c.BaseURL)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("transport: max_idle_conns must not be negative")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
