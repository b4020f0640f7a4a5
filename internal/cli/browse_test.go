package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/masft/internal/catalog"
	"github.com/roach88/masft/internal/format"
)

func TestCategoriesList(t *testing.T) {
	db := testEnv(t)

	run := runCLI(t, db, "categories")
	require.NoError(t, run.err)
	assert.Contains(t, run.stdout, "# All Failure Mode Categories")
	assert.Contains(t, run.stdout, "## Communication Failures\nCommunication failures occur when")
	assert.Contains(t, run.stdout, "## Alignment Failures")
	assert.Contains(t, run.stdout, "## Decision/Coordination Failures")
}

func TestCategoriesShowOne(t *testing.T) {
	db := testEnv(t)

	var p format.Payload
	run := runCLI(t, db, "--format", "json", "categories", "alignment", "failures")
	require.NoError(t, run.err)
	decodeData(t, run.stdout, &p)

	assert.Equal(t, format.KindCategory, p.Kind)
	assert.Equal(t, "Alignment Failures", p.Title)
	require.Len(t, p.Members, 5)
	assert.Equal(t, "Inter-Agent Misalignment", p.Members[0].Name)
}

func TestCategoriesUnknown(t *testing.T) {
	db := testEnv(t)

	run := runCLI(t, db, "--format", "json", "categories", "Security Failures")
	require.Error(t, run.err)
	assert.Equal(t, ExitFailure, run.exitCode())

	resp := decodeData(t, run.stdout, nil)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeUnknownEntity, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, `"Security Failures" not found`)
}

func TestModesGrouped(t *testing.T) {
	db := testEnv(t)

	run := runCLI(t, db, "modes")
	require.NoError(t, run.err)
	assert.Contains(t, run.stdout, "# All Failure Modes")

	cat, err := catalog.LoadDefault()
	require.NoError(t, err)
	for _, fm := range cat.FailureModes() {
		assert.Contains(t, run.stdout, "- **"+fm.Name+"**: "+fm.ShortDescription)
	}
}

func TestModesByCategory(t *testing.T) {
	db := testEnv(t)

	var p format.Payload
	run := runCLI(t, db, "--format", "json", "modes", "--category", "decision/coordination failures")
	require.NoError(t, run.err)
	decodeData(t, run.stdout, &p)

	require.Len(t, p.Groups, 1)
	assert.Equal(t, "Decision/Coordination Failures", p.Groups[0].Name)
	assert.Len(t, p.Groups[0].Members, 4)

	run = runCLI(t, db, "modes", "--category", "Nope")
	require.Error(t, run.err)
	assert.Equal(t, ExitFailure, run.exitCode())
	assert.Contains(t, run.stdout, "Error ["+ErrCodeUnknownEntity+"]")
}

func TestShowFailureMode(t *testing.T) {
	db := testEnv(t)

	run := runCLI(t, db, "show", "decision", "paralysis")
	require.NoError(t, run.err)
	assert.Contains(t, run.stdout, "# Decision Paralysis (Category: Decision/Coordination Failures)")
	assert.Contains(t, run.stdout, "### Tactical Solutions")
}

func TestShowUnknown(t *testing.T) {
	db := testEnv(t)

	run := runCLI(t, db, "show", "Alignment Failures")
	require.Error(t, run.err)
	assert.Equal(t, ExitFailure, run.exitCode())
	assert.Contains(t, run.stdout, `failure mode "Alignment Failures" not found`)
}

func TestDemoIsSeeded(t *testing.T) {
	db := testEnv(t)

	cat, err := catalog.LoadDefault()
	require.NoError(t, err)
	fm, ok := cat.LookupFailureMode("Miscommunication")
	require.True(t, ok)

	var first, second format.Payload
	run := runCLI(t, db, "--format", "json", "demo", "miscommunication", "--seed", "42")
	require.NoError(t, run.err)
	decodeData(t, run.stdout, &first)

	run = runCLI(t, db, "--format", "json", "demo", "miscommunication", "--seed", "42")
	require.NoError(t, run.err)
	decodeData(t, run.stdout, &second)

	assert.Equal(t, format.KindDemonstration, first.Kind)
	assert.Contains(t, fm.ExampleScenarios, first.Demonstration)
	assert.Equal(t, first.Demonstration, second.Demonstration)
}

func TestDemoText(t *testing.T) {
	db := testEnv(t)

	run := runCLI(t, db, "demo", "Signal", "Distortion")
	require.NoError(t, run.err)
	assert.Contains(t, run.stdout, "# Signal Distortion (Category: Communication Failures)")
	assert.Contains(t, run.stdout, "## Demonstration\n")
}
