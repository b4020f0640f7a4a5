package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/masft/internal/catalog"
	"github.com/roach88/masft/internal/resolve"
)

// Scenario is a named list of queries with expected outcomes.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	Description string `yaml:"description"`

	// Catalog is a catalog JSON path. Empty uses the embedded catalog.
	Catalog string `yaml:"catalog,omitempty"`

	// MinScore overrides the resolver threshold when positive.
	MinScore int `yaml:"min_score,omitempty"`

	Cases []Case `yaml:"cases"`
}

// Case is one query and what it must resolve to.
type Case struct {
	Query  string `yaml:"query"`
	Expect Expect `yaml:"expect"`
}

// Expect describes the expected result. Only set fields are checked.
type Expect struct {
	Outcome       string   `yaml:"outcome"`
	Entity        string   `yaml:"entity,omitempty"`
	Kind          string   `yaml:"kind,omitempty"`
	Candidates    []string `yaml:"candidates,omitempty"`
	Confidence    int      `yaml:"confidence,omitempty"`
	MinConfidence int      `yaml:"min_confidence,omitempty"`
}

// LoadScenario reads and validates a scenario file.
// A relative catalog path is resolved against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.Catalog != "" && !filepath.IsAbs(scenario.Catalog) {
		scenario.Catalog = filepath.Join(filepath.Dir(path), scenario.Catalog)
	}
	return scenario, nil
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.MinScore < 0 {
		return fmt.Errorf("min_score must not be negative")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if err := validateExpect(c.Expect); err != nil {
			return fmt.Errorf("case %d (%q): %w", i, c.Query, err)
		}
	}
	return nil
}

func validateExpect(e Expect) error {
	switch resolve.Outcome(e.Outcome) {
	case resolve.OutcomeResolved:
		if e.Entity == "" {
			return fmt.Errorf("resolved expectation requires entity")
		}
		if len(e.Candidates) > 0 {
			return fmt.Errorf("resolved expectation cannot list candidates")
		}
	case resolve.OutcomeAmbiguous:
		if len(e.Candidates) < 2 {
			return fmt.Errorf("ambiguous expectation requires at least two candidates")
		}
		if e.Entity != "" {
			return fmt.Errorf("ambiguous expectation cannot name an entity")
		}
	case resolve.OutcomeNoMatch:
		if e.Entity != "" || len(e.Candidates) > 0 || e.Confidence != 0 || e.MinConfidence != 0 {
			return fmt.Errorf("no_match expectation takes no other fields")
		}
	default:
		return fmt.Errorf("unknown outcome %q (valid: resolved, ambiguous, no_match)", e.Outcome)
	}

	switch catalog.EntityKind(e.Kind) {
	case "", catalog.KindFailureMode, catalog.KindCategory:
	default:
		return fmt.Errorf("unknown kind %q (valid: failure_mode, category)", e.Kind)
	}
	return nil
}
