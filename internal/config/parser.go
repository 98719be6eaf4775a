package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	editorerrors "github.com/alexisbeaulieu97/paramedit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads an editor document from disk, validates it, and returns the resulting model.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, editorerrors.NewParseError(path, 0, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data, path)
	}
	return Parse(data, path)
}

// Parse decodes and validates a YAML editor document. source labels errors.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, editorerrors.NewParseError(source, extractLine(err), err)
	}
	return validated(&cfg)
}

// ParseTOML decodes and validates a TOML editor document.
func ParseTOML(data []byte, source string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		line := 0
		var perr toml.ParseError
		if errors.As(err, &perr) {
			line = perr.Position.Line
		}
		return nil, editorerrors.NewParseError(source, line, err)
	}
	return validated(&cfg)
}

// Load returns the document at path, or the built-in document when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return ParseConfig(path)
}

func validated(cfg *Config) (*Config, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
