package config

import (
	"fmt"

	"github.com/sdkpipe/sdkpipe/logger"
	"github.com/sdkpipe/sdkpipe/resilience"
	"github.com/sdkpipe/sdkpipe/transport"
	"github.com/sdkpipe/sdkpipe/validation"
)

// ClientConfig contains the configuration every SDK client needs. Projects
// extend it by embedding:
//
//	type IPInfoConfig struct {
//	    config.ClientConfig `yaml:",inline" mapstructure:",squash"`
//	    Token string `yaml:"token" mapstructure:"token"`
//	}
type ClientConfig struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging   logger.Config    `yaml:"logging" mapstructure:"logging"`
	Transport transport.Config `yaml:"transport" mapstructure:"transport"`

	// Retry, Breaker, and Limiter are optional; nil disables the pattern.
	Retry   *resilience.RetryConfig   `yaml:"retry" mapstructure:"retry"`
	Breaker *resilience.BreakerConfig `yaml:"breaker" mapstructure:"breaker"`
	Limiter *resilience.LimiterConfig `yaml:"limiter" mapstructure:"limiter"`
}

// GetClientConfig returns the base ClientConfig. Embedding structs promote
// this method and thereby satisfy the Config interface.
func (c *ClientConfig) GetClientConfig() *ClientConfig {
	return c
}

// ApplyDefaults fills in zero-value fields. Embedding structs override this
// and call c.ClientConfig.ApplyDefaults() first.
func (c *ClientConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	if c.Debug && c.Logging.Level == "info" {
		c.Logging.Level = "debug"
	}
	c.Transport.ApplyDefaults()
	if c.Breaker != nil && c.Breaker.Name == "" {
		c.Breaker.Name = c.Name
	}
	if c.Limiter != nil && c.Limiter.Name == "" {
		c.Limiter.Name = c.Name
	}
}

// Validate checks the configuration. Embedding structs override this and
// call c.ClientConfig.Validate() first.
func (c *ClientConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Transport.Validate(); err != nil {
		return fmt.Errorf("config.transport: %w", err)
	}
	return nil
}

// Config is implemented by any struct embedding ClientConfig.
type Config interface {
	GetClientConfig() *ClientConfig
	ApplyDefaults()
	Validate() error
}

// Load resolves, loads, defaults, and validates a client configuration in
// one call.
func Load(clientName string, cfg Config, opts ...LoaderOption) error {
	if err := LoadConfig(clientName, cfg, opts...); err != nil {
		return err
	}
	base := cfg.GetClientConfig()
	if base.Name == "" {
		base.Name = clientName
	}
	cfg.ApplyDefaults()
	return cfg.Validate()
}
