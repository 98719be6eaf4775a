package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	editorerrors "github.com/alexisbeaulieu97/paramedit/pkg/errors"
)

// convertValidationError normalizes validator errors into editor validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldPath(ve)
		msg := fmt.Sprintf("%s (rule %s)", describeRule(ve), ve.Tag())
		return editorerrors.NewValidationError(field, msg, err)
	}

	return editorerrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldPath drops the root struct name from the yaml-tagged namespace,
// e.g. "Config.parameters[0].type" becomes "parameters[0].type".
func yamlFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldForParameter(index int, field string) string {
	return fmt.Sprintf("parameters[%d].%s", index, field)
}

func fieldForValue(index int, field string) string {
	return fmt.Sprintf("initial.values[%d].%s", index, field)
}

// describeRule phrases a failed validator tag for editor document authors.
func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "schema_version":
		return "must look like MAJOR.MINOR"
	case "param_type":
		return "must be string or number"
	case "log_level":
		return "must be one of trace, debug, info, warn, error, disabled"
	case "nonblank":
		return "must not be blank"
	default:
		return "is not valid"
	}
}
