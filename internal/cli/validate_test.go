package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/masft/internal/catalog"
)

func runValidateCmd(t *testing.T, format string, args ...string) cliRun {
	t.Helper()
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return cliRun{stdout: buf.String(), stderr: errBuf.String(), err: err}
}

func TestValidateEmbeddedCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failure_modes.json")
	require.NoError(t, os.WriteFile(path, catalog.DefaultSource(), 0o600))

	run := runValidateCmd(t, "text", path)
	require.NoError(t, run.err)
	assert.Contains(t, run.stdout, "Catalog valid: 14 failure modes in 3 categories")
}

func TestValidateJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failure_modes.json")
	require.NoError(t, os.WriteFile(path, catalog.DefaultSource(), 0o600))

	var result ValidateResult
	run := runValidateCmd(t, "json", path)
	require.NoError(t, run.err)
	decodeData(t, run.stdout, &result)
	assert.Equal(t, ValidateResult{Path: path, FailureModes: 14, Categories: 3}, result)
}

func TestValidateInvalidCatalog(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"syntax", `{"Broken": `, catalog.ErrCodeSyntax},
		{"empty", `{}`, catalog.ErrCodeEmpty},
		{"shape", `["not", "an", "object"]`, catalog.ErrCodeShape},
		{"missing field", `{"Lonely Mode": {"category": "Solo"}}`, catalog.ErrCodeSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			run := runValidateCmd(t, "json", path)
			require.Error(t, run.err)
			assert.Equal(t, ExitFailure, GetExitCode(run.err))

			resp := decodeData(t, run.stdout, nil)
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestValidateMissingFile(t *testing.T) {
	run := runValidateCmd(t, "text", "/nonexistent/catalog.json")
	require.Error(t, run.err)
	assert.Equal(t, ExitFailure, GetExitCode(run.err))
	assert.Contains(t, run.stdout, "Error ["+catalog.ErrCodeRead+"]")
}

func TestValidateRequiresOneArg(t *testing.T) {
	run := runValidateCmd(t, "text")
	require.Error(t, run.err)
	assert.Contains(t, run.err.Error(), "accepts 1 arg")
}

func TestValidateReportsEntryAndField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{
  "Lonely Mode": {
    "category": "Solo",
    "description": "Works alone.",
    "example_scenarios": ["It never asks."],
    "phd_level_analysis": "Isolation.",
    "tactical_solutions": [],
    "structural_solutions": []
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	run := runValidateCmd(t, "json", path)
	require.Error(t, run.err)

	resp := decodeData(t, run.stdout, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, catalog.ErrCodeSchema, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "#Catalog")

	details, ok := resp.Error.Details.(map[string]any)
	require.True(t, ok, "details: %#v", resp.Error.Details)
	assert.Equal(t, "Lonely Mode", details["failure_mode"])
	assert.Equal(t, "short_description", details["field"])
}
