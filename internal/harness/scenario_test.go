package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenario(t, `
name: basic
description: "adds and lists"
today: "2024-03-10"
seed: |
  date,category,description
steps:
  - args: [add, --description, x]
  - args: [list]
    exit: 0
assertions:
  - type: stdout_contains
    step: 1
    text: x
  - type: file_unchanged
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "basic", s.Name)
	assert.Equal(t, "2024-03-10", s.Today)
	require.NotNil(t, s.Seed)
	assert.Equal(t, "date,category,description\n", *s.Seed)
	require.Len(t, s.Steps, 2)
	assert.Equal(t, []string{"add", "--description", "x"}, s.Steps[0].Args)
	require.Len(t, s.Assertions, 2)
	assert.Equal(t, AssertStdoutContains, s.Assertions[0].Type)
}

func TestLoadScenario_NoSeed(t *testing.T) {
	path := writeScenario(t, `
name: empty
description: "starts without a file"
steps:
  - args: [list]
    exit: 1
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Nil(t, s.Seed)
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing_name",
			content: "description: d\nsteps:\n  - args: [list]\n",
			wantErr: "name is required",
		},
		{
			name:    "missing_description",
			content: "name: n\nsteps:\n  - args: [list]\n",
			wantErr: "description is required",
		},
		{
			name:    "no_steps",
			content: "name: n\ndescription: d\n",
			wantErr: "steps list is required",
		},
		{
			name:    "empty_args",
			content: "name: n\ndescription: d\nsteps:\n  - exit: 0\n",
			wantErr: "steps[0]: args is required",
		},
		{
			name:    "bad_today",
			content: "name: n\ndescription: d\ntoday: tomorrow\nsteps:\n  - args: [list]\n",
			wantErr: "today",
		},
		{
			name:    "unknown_field",
			content: "name: n\ndescription: d\nstep:\n  - args: [list]\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "unknown_assertion",
			content: "name: n\ndescription: d\nsteps:\n  - args: [list]\nassertions:\n  - type: trace_contains\n",
			wantErr: `unknown assertion type "trace_contains"`,
		},
		{
			name:    "step_out_of_range",
			content: "name: n\ndescription: d\nsteps:\n  - args: [list]\nassertions:\n  - type: stdout_contains\n    step: 3\n    text: x\n",
			wantErr: "step 3 out of range",
		},
		{
			name:    "missing_text",
			content: "name: n\ndescription: d\nsteps:\n  - args: [list]\nassertions:\n  - type: stderr_contains\n",
			wantErr: "text is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenarios_DuplicateNames(t *testing.T) {
	dir := t.TempDir()
	content := "name: same\ndescription: d\nsteps:\n  - args: [list]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(content), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(content), 0o644))

	_, err := LoadScenarios(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario name "same" already used by a.yaml`)
}
