// Package validation provides struct-tag validation for configuration
// structs, backed by the validator library. Failures surface as config-kind
// httpsdk errors so they flow through pipelines like any other
// configuration problem.
//
//	type Config struct {
//	    BaseURL string        `mapstructure:"base_url" validate:"omitempty,url"`
//	    Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
//	}
//	err := validation.Validate(cfg)
package validation
