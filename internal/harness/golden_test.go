package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertGolden_CoreScenario(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/masft.yaml")
	require.NoError(t, err)

	result, err := RunScenario(context.Background(), scenario)
	require.NoError(t, err)
	require.True(t, result.Pass, "errors: %v", result.Errors)

	require.NoError(t, AssertGolden(t, scenario.Name, result))
}

func TestMarshalSnapshot_Deterministic(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/ties.yaml")
	require.NoError(t, err)

	first, err := RunScenario(context.Background(), scenario)
	require.NoError(t, err)
	second, err := RunScenario(context.Background(), scenario)
	require.NoError(t, err)

	a, err := MarshalSnapshot(scenario.Name, first)
	require.NoError(t, err)
	b, err := MarshalSnapshot(scenario.Name, second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
	assert.Contains(t, string(a), `"Drift Family"`)
}
