// Package config loads command configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from the process environment.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseEnviron loads configuration from KEY=value pairs, as returned by
// os.Environ. A nil slice reads the process environment instead.
func ParseEnviron(target any, environ []string) error {
	if environ == nil {
		return ParseEnv(target)
	}
	if err := env.ParseWithOptions(target, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
