package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeEditorDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "editor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const smallDocument = `version: "1.0"
settings:
  log_level: warn
  human_readable: false
parameters:
  - id: 10
    name: Width
    type: number
  - id: 11
    name: Label
    type: string
initial:
  values:
    - param_id: 10
      value: 3.5
  colors: [black]
`
