// Package config loads service configuration from the process environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the site.
const EnvPrefix = "CAROUSEL_"

// Option customizes environment parsing.
type Option func(*env.Options)

// WithPrefix overrides the variable prefix. An empty prefix reads tags verbatim.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) {
		o.Prefix = prefix
	}
}

// WithEnvironment reads values from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) {
		o.Environment = vars
	}
}

// ParseEnv loads configuration from environment variables into target.
//
// Struct tags name variables without the prefix; `env:"HTTP_ADDR"` reads
// CAROUSEL_HTTP_ADDR unless WithPrefix says otherwise.
func ParseEnv(target any, opts ...Option) error {
	options := env.Options{Prefix: EnvPrefix}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if err := env.ParseWithOptions(target, options); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
