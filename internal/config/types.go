package config

import "strings"

const (
	defaultLogLevel      = "info"
	defaultHumanReadable = true
)

// Config represents an editor document: the parameter catalog, the initial
// snapshot, and runtime settings.
type Config struct {
	Version    string          `yaml:"version" toml:"version" validate:"required,schema_version"`
	Settings   Settings        `yaml:"settings,omitempty" toml:"settings"`
	Parameters []ParameterSpec `yaml:"parameters" toml:"parameters" validate:"required,min=1,dive"`
	Initial    InitialSpec     `yaml:"initial,omitempty" toml:"initial"`
}

// Settings holds logging preferences for the editor process.
type Settings struct {
	LogLevel      string `yaml:"log_level,omitempty" toml:"log_level" validate:"omitempty,log_level"`
	HumanReadable *bool  `yaml:"human_readable,omitempty" toml:"human_readable"`
}

// ParameterSpec declares one catalog parameter.
type ParameterSpec struct {
	ID   int    `yaml:"id" toml:"id" validate:"required,min=1"`
	Name string `yaml:"name" toml:"name" validate:"required,max=100"`
	Type string `yaml:"type" toml:"type" validate:"required,param_type"`
}

// InitialSpec is the starting snapshot.
type InitialSpec struct {
	Values []ValueSpec `yaml:"values,omitempty" toml:"values" validate:"omitempty,dive"`
	Colors []string    `yaml:"colors,omitempty" toml:"colors" validate:"omitempty,dive,nonblank"`
}

// ValueSpec is one initial parameter value. Value holds the decoded scalar and
// is converted against the parameter's declared type.
type ValueSpec struct {
	ParamID int `yaml:"param_id" toml:"param_id" validate:"required,min=1"`
	Value   any `yaml:"value" toml:"value"`
}

// EffectiveLogLevel returns the configured level or the default.
func (s Settings) EffectiveLogLevel() string {
	if strings.TrimSpace(s.LogLevel) == "" {
		return defaultLogLevel
	}
	return strings.ToLower(s.LogLevel)
}

// EffectiveHumanReadable returns whether console-formatted logs are enabled.
func (s Settings) EffectiveHumanReadable() bool {
	if s.HumanReadable == nil {
		return defaultHumanReadable
	}
	return *s.HumanReadable
}
