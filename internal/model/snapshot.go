package model

import (
	"encoding/json"

	"github.com/alexisbeaulieu97/paramedit/internal/param"
)

// Snapshot is the serializable form of a Model, used for dumps and diffs.
type Snapshot struct {
	ParamValues []SnapshotValue `yaml:"param_values" json:"param_values"`
	Colors      []string        `yaml:"colors" json:"colors"`
}

// SnapshotValue is one serialized parameter value.
type SnapshotValue struct {
	ParamID int `yaml:"param_id" json:"param_id"`
	Value   any `yaml:"value" json:"value"`
}

// Snapshot returns the serializable form of m.
func (m Model) Snapshot() Snapshot {
	s := Snapshot{
		ParamValues: make([]SnapshotValue, 0, len(m.values)),
		Colors:      m.Colors(),
	}
	for _, pv := range m.values {
		s.ParamValues = append(s.ParamValues, SnapshotValue{ParamID: int(pv.ParamID), Value: param.Native(pv.Value)})
	}
	return s
}

// MarshalYAML implements yaml.Marshaler.
func (m Model) MarshalYAML() (any, error) {
	return m.Snapshot(), nil
}

// MarshalJSON implements json.Marshaler.
func (m Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Snapshot())
}
