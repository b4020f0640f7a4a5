package format

import (
	"fmt"
	"math/rand/v2"

	"github.com/roach88/masft/internal/catalog"
	"github.com/roach88/masft/internal/resolve"
)

const (
	ambiguousTitle   = "Multiple Matches"
	ambiguousMessage = "Your query matches more than one entry equally well. Ask again with one of these names:"

	noMatchTitle   = "No Match Found"
	noMatchMessage = "I couldn't find a failure mode or category matching your query."

	helpIntro = "I can help you learn about why multi-agent LLM systems fail. Here are some things you can ask me:"
)

// HelpHints are the suggestions shown when a query matches nothing.
var HelpHints = []string{
	"Ask about a specific failure mode (e.g., 'Show me an example of information withholding')",
	"Request explanation of a failure category (e.g., 'Explain alignment failures')",
	"Ask for solutions to a particular failure mode",
	"Browse everything with `masft modes` or `masft categories`",
}

// Format builds the payload for a resolver result.
// A resolved entity missing from cat is reported as a NoMatch.
func Format(result resolve.Result, cat *catalog.Catalog) Payload {
	switch r := result.(type) {
	case resolve.Resolved:
		var (
			p  Payload
			ok bool
		)
		switch e := r.Entity.(type) {
		case catalog.FailureMode:
			p, ok = FailureModePayload(e), true
		case catalog.Category:
			p, ok = CategoryPayload(cat, e.Name)
		}
		if !ok {
			return noMatch()
		}
		p.Confidence = r.Confidence
		return p

	case resolve.Ambiguous:
		p := Payload{
			Kind:       KindAmbiguous,
			Title:      ambiguousTitle,
			Confidence: r.Score,
			Message:    ambiguousMessage,
			Candidates: make([]Candidate, 0, len(r.Candidates)),
		}
		for _, e := range r.Candidates {
			p.Candidates = append(p.Candidates, Candidate{Name: e.Identifier(), Kind: e.Kind()})
		}
		return p

	default:
		return noMatch()
	}
}

func noMatch() Payload {
	return Payload{
		Kind:    KindNoMatch,
		Title:   noMatchTitle,
		Message: noMatchMessage,
		Hints:   HelpHints,
	}
}

// FailureModePayload is the full response for a failure mode.
func FailureModePayload(fm catalog.FailureMode) Payload {
	return Payload{
		Kind:             KindFailureMode,
		Title:            fm.Name,
		Category:         fm.Category,
		Description:      fm.Description,
		ShortDescription: fm.ShortDescription,
		ExampleScenarios: fm.ExampleScenarios,
		Analysis:         fm.PhDLevelAnalysis,
		Tactical:         fm.TacticalSolutions,
		Structural:       fm.StructuralSolutions,
	}
}

// CategoryPayload describes a category and its members.
func CategoryPayload(cat *catalog.Catalog, name string) (Payload, bool) {
	c, ok := cat.LookupCategory(name)
	if !ok {
		return Payload{}, false
	}
	return Payload{
		Kind:        KindCategory,
		Title:       c.Name,
		Description: c.Description,
		Members:     members(cat, c),
	}, true
}

// AllFailureModes lists every failure mode grouped by category.
func AllFailureModes(cat *catalog.Catalog) Payload {
	p := Payload{Kind: KindModeList, Title: "All Failure Modes"}
	for _, c := range cat.Categories() {
		p.Groups = append(p.Groups, Group{Name: c.Name, Members: members(cat, c)})
	}
	return p
}

// AllCategories lists every category with its explanation.
func AllCategories(cat *catalog.Catalog) Payload {
	p := Payload{Kind: KindCategoryList, Title: "All Failure Mode Categories"}
	for _, c := range cat.Categories() {
		p.Groups = append(p.Groups, Group{Name: c.Name, Description: c.Description})
	}
	return p
}

func members(cat *catalog.Catalog, c catalog.Category) []Member {
	out := make([]Member, 0, len(c.Members))
	for _, name := range c.Members {
		fm, _ := cat.LookupFailureMode(name)
		out = append(out, Member{Name: name, ShortDescription: fm.ShortDescription})
	}
	return out
}

// Demonstrate picks one example scenario of fm using rng.
func Demonstrate(fm catalog.FailureMode, rng *rand.Rand) string {
	if len(fm.ExampleScenarios) == 0 {
		return fmt.Sprintf("No demonstration scenarios available for %s.", fm.Name)
	}
	return fm.ExampleScenarios[rng.IntN(len(fm.ExampleScenarios))]
}

// DemonstrationPayload wraps a single scenario picked by Demonstrate.
func DemonstrationPayload(fm catalog.FailureMode, rng *rand.Rand) Payload {
	return Payload{
		Kind:          KindDemonstration,
		Title:         fm.Name,
		Category:      fm.Category,
		Demonstration: Demonstrate(fm, rng),
	}
}
