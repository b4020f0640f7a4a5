package format

import (
	"fmt"
	"strings"

	"github.com/roach88/masft/internal/catalog"
)

// Kind identifies the layout of a Payload.
type Kind string

const (
	KindFailureMode   Kind = "failure_mode"
	KindCategory      Kind = "category"
	KindAmbiguous     Kind = "ambiguous"
	KindNoMatch       Kind = "no_match"
	KindDemonstration Kind = "demonstration"
	KindModeList      Kind = "failure_mode_list"
	KindCategoryList  Kind = "category_list"
)

// Member is a failure mode listed under a category.
type Member struct {
	Name             string `json:"name"`
	ShortDescription string `json:"short_description"`
}

// Candidate is one of several equally good matches.
type Candidate struct {
	Name string             `json:"name"`
	Kind catalog.EntityKind `json:"kind"`
}

// Group is a category with its members, used by list payloads.
type Group struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Members     []Member `json:"members,omitempty"`
}

// Payload is a user-facing response. Which fields are set depends on Kind.
type Payload struct {
	Kind             Kind        `json:"kind"`
	Title            string      `json:"title"`
	Confidence       int         `json:"confidence,omitempty"`
	Category         string      `json:"category,omitempty"`
	Description      string      `json:"description,omitempty"`
	ShortDescription string      `json:"short_description,omitempty"`
	Demonstration    string      `json:"demonstration,omitempty"`
	ExampleScenarios []string    `json:"example_scenarios,omitempty"`
	Analysis         string      `json:"phd_level_analysis,omitempty"`
	Tactical         []string    `json:"tactical_solutions,omitempty"`
	Structural       []string    `json:"structural_solutions,omitempty"`
	Members          []Member    `json:"members,omitempty"`
	Candidates       []Candidate `json:"candidates,omitempty"`
	Groups           []Group     `json:"groups,omitempty"`
	Message          string      `json:"message,omitempty"`
	Hints            []string    `json:"hints,omitempty"`
}

// Markdown renders the payload as a markdown document ending in a newline.
func (p Payload) Markdown() string {
	var b strings.Builder

	switch p.Kind {
	case KindFailureMode:
		fmt.Fprintf(&b, "# %s (Category: %s)\n\n", p.Title, p.Category)
		fmt.Fprintf(&b, "## Definition\n%s\n\n", orNone(p.Description, "No description available."))
		b.WriteString("## Demonstration\n")
		if p.Demonstration != "" {
			b.WriteString(p.Demonstration + "\n")
		} else {
			writeList(&b, p.ExampleScenarios)
		}
		fmt.Fprintf(&b, "\n## PhD-Level Analysis\n%s\n\n", orNone(p.Analysis, "No analysis available for "+p.Title+"."))
		b.WriteString("## Solutions\n\n### Tactical Solutions\n")
		writeList(&b, p.Tactical)
		b.WriteString("\n### Structural Solutions\n")
		writeList(&b, p.Structural)

	case KindCategory:
		fmt.Fprintf(&b, "# %s\n\n", p.Title)
		fmt.Fprintf(&b, "%s\n\n", orNone(p.Description, "No description available for "+p.Title+"."))
		b.WriteString("## Failure Modes in this Category:\n")
		writeMembers(&b, p.Members)

	case KindAmbiguous:
		fmt.Fprintf(&b, "# %s\n\n%s\n\n", p.Title, p.Message)
		for _, c := range p.Candidates {
			fmt.Fprintf(&b, "- **%s** (%s)\n", c.Name, c.Kind)
		}

	case KindNoMatch:
		fmt.Fprintf(&b, "# %s\n\n%s\n\n", p.Title, p.Message)
		writeHints(&b, p.Hints)

	case KindDemonstration:
		fmt.Fprintf(&b, "# %s (Category: %s)\n\n", p.Title, p.Category)
		fmt.Fprintf(&b, "## Demonstration\n%s\n", p.Demonstration)

	case KindModeList:
		fmt.Fprintf(&b, "# %s\n", p.Title)
		for _, g := range p.Groups {
			fmt.Fprintf(&b, "\n## %s\n", g.Name)
			writeMembers(&b, g.Members)
		}

	case KindCategoryList:
		fmt.Fprintf(&b, "# %s\n", p.Title)
		for _, g := range p.Groups {
			fmt.Fprintf(&b, "\n## %s\n%s\n", g.Name, orNone(g.Description, "No description available for "+g.Name+"."))
		}

	default:
		fmt.Fprintf(&b, "# %s\n", p.Title)
	}

	return b.String()
}

func writeList(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func writeMembers(b *strings.Builder, members []Member) {
	for _, m := range members {
		fmt.Fprintf(b, "- **%s**: %s\n", m.Name, orNone(m.ShortDescription, "No description available."))
	}
}

func writeHints(b *strings.Builder, hints []string) {
	b.WriteString(helpIntro + "\n\n")
	writeList(b, hints)
}

func orNone(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
