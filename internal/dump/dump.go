// Package dump serializes snapshots for display and compares them.
package dump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/paramedit/internal/model"
	"github.com/alexisbeaulieu97/paramedit/pkg/diff"
)

// Format selects the serialization used by Encode.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatYAML, FormatJSON:
		return f, nil
	case "":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected yaml or json)", name)
	}
}

// Encode renders m in the requested format, always ending with a newline.
func Encode(m model.Model, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML, "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Diff returns a unified diff of the YAML forms of before and after, or an
// empty string when they serialize identically.
func Diff(before, after model.Model) (string, error) {
	a, err := Encode(before, FormatYAML)
	if err != nil {
		return "", err
	}
	b, err := Encode(after, FormatYAML)
	if err != nil {
		return "", err
	}
	return diff.GenerateUnifiedDiff(a, b, "initial", "current"), nil
}

// DiffStat counts the YAML lines added and removed between before and after.
func DiffStat(before, after model.Model) (added, removed int, err error) {
	a, err := Encode(before, FormatYAML)
	if err != nil {
		return 0, 0, err
	}
	b, err := Encode(after, FormatYAML)
	if err != nil {
		return 0, 0, err
	}
	added, removed = diff.Stat(a, b)
	return added, removed, nil
}
