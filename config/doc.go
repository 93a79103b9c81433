// Package config loads SDK client configuration from YAML files, .env files,
// and environment variables.
//
// Clients embed ClientConfig and call Load:
//
//	type IPInfoConfig struct {
//	    config.ClientConfig `yaml:",inline" mapstructure:",squash"`
//	    Token string `yaml:"token" mapstructure:"token"`
//	}
//
//	var cfg IPInfoConfig
//	err := config.Load("ipinfo", &cfg)
//
// Environment variables override file values using the upper-cased client
// name as prefix: IPINFO_TRANSPORT_BASE_URL sets transport.base_url.
package config
