package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides are settings taken from PARAMEDIT_* environment variables.
// They win over the editor document.
type EnvOverrides struct {
	ConfigPath    string `env:"PARAMEDIT_CONFIG"`
	LogLevel      string `env:"PARAMEDIT_LOG_LEVEL"`
	HumanReadable *bool  `env:"PARAMEDIT_HUMAN_READABLE"`
}

// ParseEnv reads overrides from environ, or from the process environment
// when environ is nil.
func ParseEnv(environ map[string]string) (EnvOverrides, error) {
	var overrides EnvOverrides
	if err := env.ParseWithOptions(&overrides, env.Options{Environment: environ}); err != nil {
		return EnvOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	overrides.LogLevel = strings.TrimSpace(overrides.LogLevel)
	if overrides.LogLevel != "" && !isLogLevel(overrides.LogLevel) {
		return EnvOverrides{}, fmt.Errorf("parse env: PARAMEDIT_LOG_LEVEL %q is not a known level", overrides.LogLevel)
	}
	return overrides, nil
}

// Apply copies every set override into s.
func (o EnvOverrides) Apply(s *Settings) {
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
	if o.HumanReadable != nil {
		v := *o.HumanReadable
		s.HumanReadable = &v
	}
}
