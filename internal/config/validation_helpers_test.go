package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	editorerrors "github.com/alexisbeaulieu97/paramedit/pkg/errors"
)

func TestValidationMessagesNameTheRule(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cfg     *Config
		field   string
		message string
	}{
		{
			name:    "blank color",
			cfg:     &Config{Version: "1.0", Parameters: []ParameterSpec{{ID: 1, Name: "a", Type: "string"}}, Initial: InitialSpec{Colors: []string{" \t"}}},
			field:   "initial.colors[0]",
			message: "must not be blank (rule nonblank)",
		},
		{
			name:    "bad type",
			cfg:     &Config{Version: "1.0", Parameters: []ParameterSpec{{ID: 1, Name: "a", Type: "bool"}}},
			field:   "parameters[0].type",
			message: "must be string or number (rule param_type)",
		},
		{
			name:    "bad version",
			cfg:     &Config{Version: "v1", Parameters: []ParameterSpec{{ID: 1, Name: "a", Type: "string"}}},
			field:   "version",
			message: "must look like MAJOR.MINOR (rule schema_version)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(tc.cfg)
			var validationErr *editorerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
			require.Equal(t, tc.message, validationErr.Message)
			require.Equal(t, "invalid "+tc.field+": "+tc.message, err.Error())
		})
	}
}
