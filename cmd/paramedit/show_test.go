package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowCommand_DefaultSnapshotYAML(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "show")
	require.NoError(t, err)
	require.Contains(t, stdout, "param_values:")
	require.Contains(t, stdout, "value: повседневное")
	require.Contains(t, stdout, "value: 1234")
	require.Contains(t, stdout, "- blue")
}

func TestShowCommand_JSONOutput(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "show", "--format", "json")
	require.NoError(t, err)

	var payload struct {
		ParamValues []struct {
			ParamID int `json:"param_id"`
			Value   any `json:"value"`
		} `json:"param_values"`
		Colors []string `json:"colors"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Len(t, payload.ParamValues, 4)
	require.Equal(t, 3, payload.ParamValues[2].ParamID)
	require.Equal(t, float64(1234), payload.ParamValues[2].Value)
	require.Equal(t, []string{"red", "blue"}, payload.Colors)
}

func TestShowCommand_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "show", "--format", "toml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to show: selecting output format")
	require.Contains(t, err.Error(), "Suggestion:")
}

func TestShowCommand_ConfigFile(t *testing.T) {
	t.Parallel()

	path := writeEditorDocument(t, smallDocument)
	stdout, _, err := executeCommand(t, "show", "--config", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "param_id: 10")
	require.Contains(t, stdout, "value: 3.5")
	require.Contains(t, stdout, "- black")
	require.NotContains(t, stdout, "повседневное")
}

func TestShowCommand_InvalidConfig(t *testing.T) {
	t.Parallel()

	path := writeEditorDocument(t, "version: \"1.0\"\nparameters: []\n")
	_, _, err := executeCommand(t, "show", "--config", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading editor document")
	require.Contains(t, err.Error(), "parameters")
}

func TestRootCommand_PrintsSnapshotWithoutTerminal(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t)
	require.NoError(t, err)
	require.Contains(t, stdout, "param_values:")
	require.Contains(t, stdout, "colors:")
}

func TestRootCommand_VerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	_, stderr, err := executeCommand(t, "show", "--verbose")
	require.NoError(t, err)
	require.Contains(t, stderr, "editor document loaded")
}

func TestShowCommand_EnvFileSelectsDocument(t *testing.T) {
	t.Parallel()

	docPath := writeEditorDocument(t, smallDocument)
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PARAMEDIT_CONFIG="+docPath+"\nPARAMEDIT_LOG_LEVEL=debug\n"), 0o600))

	stdout, stderr, err := executeCommand(t, "show", "--env-file", envPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "param_id: 10")
	require.Contains(t, stderr, "editor document loaded")
}

func TestShowCommand_MissingEnvFile(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "show", "--env-file", filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading env file")
}

func TestShowCommand_TOMLDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "editor.toml")
	require.NoError(t, os.WriteFile(path, []byte(`version = "1.0"

[[parameters]]
id = 5
name = "Depth"
type = "number"

[initial]
colors = ["white"]

[[initial.values]]
param_id = 5
value = 2.25
`), 0o600))

	stdout, _, err := executeCommand(t, "show", "--config", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "param_id: 5")
	require.Contains(t, stdout, "value: 2.25")
	require.Contains(t, stdout, "- white")
}

func TestShowCommand_RejectsNonFiniteInitialNumber(t *testing.T) {
	t.Parallel()

	path := writeEditorDocument(t, `version: "1.0"
parameters:
  - {id: 1, name: Depth, type: number}
initial:
  values:
    - {param_id: 1, value: .inf}
`)
	_, _, err := executeCommand(t, "show", "--format", "json", "--config", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading editor document")
	require.Contains(t, err.Error(), "initial.values[0].value")
	require.NotContains(t, err.Error(), "Report this as a bug")
}
