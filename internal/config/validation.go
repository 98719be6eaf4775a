package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/paramedit/internal/param"
	editorerrors "github.com/alexisbeaulieu97/paramedit/pkg/errors"
)

// ValidateConfig performs schema validation followed by the cross-field checks
// that keep the initial snapshot consistent with the catalog: each value names
// a declared parameter, at most once, with a value of the declared type.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return editorerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	types := make(map[int]param.Type, len(cfg.Parameters))
	for i, spec := range cfg.Parameters {
		if _, exists := types[spec.ID]; exists {
			return editorerrors.NewValidationError(fieldForParameter(i, "id"), fmt.Sprintf("duplicate parameter id %d", spec.ID), nil)
		}
		types[spec.ID] = param.Type(spec.Type)
	}

	seen := make(map[int]int, len(cfg.Initial.Values))
	for i, value := range cfg.Initial.Values {
		declared, ok := types[value.ParamID]
		if !ok {
			return editorerrors.NewValidationError(fieldForValue(i, "param_id"), fmt.Sprintf("references unknown parameter %d", value.ParamID), nil)
		}
		if prev, dup := seen[value.ParamID]; dup {
			return editorerrors.NewValidationError(fieldForValue(i, "param_id"), fmt.Sprintf("parameter %d already set by initial.values[%d]", value.ParamID, prev), nil)
		}
		seen[value.ParamID] = i

		if _, err := param.FromNative(value.Value, declared); err != nil {
			return editorerrors.NewValidationError(fieldForValue(i, "value"), fmt.Sprintf("invalid value for %s parameter %d", declared, value.ParamID), err)
		}
	}

	return nil
}
