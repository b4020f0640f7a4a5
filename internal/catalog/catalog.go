package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// EntityKind distinguishes the two kinds of catalog entries.
type EntityKind string

const (
	KindFailureMode EntityKind = "failure_mode"
	KindCategory    EntityKind = "category"
)

// String returns a human-readable label for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindFailureMode:
		return "failure mode"
	case KindCategory:
		return "category"
	default:
		return string(k)
	}
}

// Entity is either a FailureMode or a Category.
// The interface is sealed; switch on the concrete type to handle each kind.
type Entity interface {
	Kind() EntityKind
	Identifier() string
	isEntity()
}

// FailureMode is one entry of the taxonomy.
// Slice fields are shared with the catalog and must not be modified.
type FailureMode struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	Description         string   `json:"description"`
	ShortDescription    string   `json:"short_description"`
	ExampleScenarios    []string `json:"example_scenarios"`
	PhDLevelAnalysis    string   `json:"phd_level_analysis"`
	TacticalSolutions   []string `json:"tactical_solutions"`
	StructuralSolutions []string `json:"structural_solutions"`
}

func (FailureMode) Kind() EntityKind     { return KindFailureMode }
func (f FailureMode) Identifier() string { return f.Name }
func (FailureMode) isEntity()            {}

// Category groups failure modes. Members are in declaration order.
type Category struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Members     []string `json:"members"`
}

func (Category) Kind() EntityKind     { return KindCategory }
func (c Category) Identifier() string { return c.Name }
func (Category) isEntity()            {}

// Catalog is the immutable taxonomy.
type Catalog struct {
	modes      []FailureMode
	categories []Category
	modeIndex  map[string]int
	catIndex   map[string]int
}

// foldKey maps a name to its case-insensitive lookup key.
func foldKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// LookupFailureMode finds a failure mode by name, ignoring case.
func (c *Catalog) LookupFailureMode(name string) (FailureMode, bool) {
	i, ok := c.modeIndex[foldKey(name)]
	if !ok {
		return FailureMode{}, false
	}
	return c.modes[i], true
}

// LookupCategory finds a category by name, ignoring case.
func (c *Catalog) LookupCategory(name string) (Category, bool) {
	i, ok := c.catIndex[foldKey(name)]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// FailureModes returns all failure modes in declaration order.
func (c *Catalog) FailureModes() []FailureMode {
	out := make([]FailureMode, len(c.modes))
	copy(out, c.modes)
	return out
}

// Categories returns all categories in first-seen order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// FailureModesIn returns the members of a category in declaration order.
// The second result is false if the category does not exist.
func (c *Catalog) FailureModesIn(category string) ([]FailureMode, bool) {
	cat, ok := c.LookupCategory(category)
	if !ok {
		return nil, false
	}
	out := make([]FailureMode, 0, len(cat.Members))
	for _, name := range cat.Members {
		out = append(out, c.modes[c.modeIndex[foldKey(name)]])
	}
	return out, true
}

// Entities returns every failure mode followed by every category.
// This is the declaration order used to break ties between entities.
func (c *Catalog) Entities() []Entity {
	out := make([]Entity, 0, len(c.modes)+len(c.categories))
	for _, m := range c.modes {
		out = append(out, m)
	}
	for _, cat := range c.categories {
		out = append(out, cat)
	}
	return out
}

// Len returns the number of failure modes.
func (c *Catalog) Len() int {
	return len(c.modes)
}
