package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureSource = `{
  "Alpha Drift": {
    "category": "Group One",
    "description": "Alpha description.",
    "short_description": "Alpha short.",
    "example_scenarios": ["Alpha scenario."],
    "phd_level_analysis": "Alpha analysis.",
    "tactical_solutions": ["Alpha tactic."],
    "structural_solutions": ["Alpha structure."]
  },
  "Beta Loss": {
    "category": "Group Two",
    "description": "Beta description.",
    "short_description": "Beta short.",
    "example_scenarios": ["Beta scenario one.", "Beta scenario two."],
    "phd_level_analysis": "Beta analysis.",
    "tactical_solutions": [],
    "structural_solutions": ["Beta structure."]
  },
  "Gamma Stall": {
    "category": "Group One",
    "description": "Gamma description.",
    "short_description": "Gamma short.",
    "example_scenarios": ["Gamma scenario."],
    "phd_level_analysis": "Gamma analysis.",
    "tactical_solutions": ["Gamma tactic."],
    "structural_solutions": []
  }
}`

func loadFixture(t *testing.T, opts ...Option) *Catalog {
	t.Helper()
	c, err := Load([]byte(fixtureSource), opts...)
	require.NoError(t, err)
	return c
}

func TestLoad_PreservesDeclarationOrder(t *testing.T) {
	c := loadFixture(t)

	var names []string
	for _, m := range c.FailureModes() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Alpha Drift", "Beta Loss", "Gamma Stall"}, names)

	cats := c.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "Group One", cats[0].Name)
	assert.Equal(t, []string{"Alpha Drift", "Gamma Stall"}, cats[0].Members)
	assert.Equal(t, "Group Two", cats[1].Name)
	assert.Equal(t, []string{"Beta Loss"}, cats[1].Members)
}

func TestLoad_DecodesAllFields(t *testing.T) {
	c := loadFixture(t)

	got, ok := c.LookupFailureMode("Beta Loss")
	require.True(t, ok)

	want := FailureMode{
		Name:                "Beta Loss",
		Category:            "Group Two",
		Description:         "Beta description.",
		ShortDescription:    "Beta short.",
		ExampleScenarios:    []string{"Beta scenario one.", "Beta scenario two."},
		PhDLevelAnalysis:    "Beta analysis.",
		TacticalSolutions:   []string{},
		StructuralSolutions: []string{"Beta structure."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LookupFailureMode mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	c := loadFixture(t)

	tests := []struct {
		query string
		want  string
	}{
		{"Alpha Drift", "Alpha Drift"},
		{"alpha drift", "Alpha Drift"},
		{"ALPHA DRIFT", "Alpha Drift"},
		{"  gamma stall  ", "Gamma Stall"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			m, ok := c.LookupFailureMode(tt.query)
			require.True(t, ok)
			assert.Equal(t, tt.want, m.Name)
		})
	}

	cat, ok := c.LookupCategory("group one")
	require.True(t, ok)
	assert.Equal(t, "Group One", cat.Name)

	_, ok = c.LookupFailureMode("Alpha")
	assert.False(t, ok, "lookup must be exact, not prefix")
	_, ok = c.LookupCategory("Group Three")
	assert.False(t, ok)
}

func TestFailureModesIn(t *testing.T) {
	c := loadFixture(t)

	modes, ok := c.FailureModesIn("GROUP ONE")
	require.True(t, ok)
	require.Len(t, modes, 2)
	assert.Equal(t, "Alpha Drift", modes[0].Name)
	assert.Equal(t, "Gamma Stall", modes[1].Name)

	_, ok = c.FailureModesIn("nope")
	assert.False(t, ok)
}

func TestEntities_FailureModesThenCategories(t *testing.T) {
	c := loadFixture(t)

	var got []string
	for _, e := range c.Entities() {
		got = append(got, string(e.Kind())+":"+e.Identifier())
	}
	assert.Equal(t, []string{
		"failure_mode:Alpha Drift",
		"failure_mode:Beta Loss",
		"failure_mode:Gamma Stall",
		"category:Group One",
		"category:Group Two",
	}, got)
}

func TestFailureModes_ReturnsCopy(t *testing.T) {
	c := loadFixture(t)

	modes := c.FailureModes()
	modes[0].Name = "mutated"

	again := c.FailureModes()
	assert.Equal(t, "Alpha Drift", again[0].Name)
}

func TestWithCategoryDescriptions(t *testing.T) {
	c := loadFixture(t, WithCategoryDescriptions(map[string]string{
		"group one": "  The first group.\n",
	}))

	cat, ok := c.LookupCategory("Group One")
	require.True(t, ok)
	assert.Equal(t, "The first group.", cat.Description)

	other, ok := c.LookupCategory("Group Two")
	require.True(t, ok)
	assert.Empty(t, other.Description)
}

func TestEntityKindString(t *testing.T) {
	assert.Equal(t, "failure mode", KindFailureMode.String())
	assert.Equal(t, "category", KindCategory.String())
}
