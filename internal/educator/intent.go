package educator

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/roach88/masft/internal/format"
)

var (
	modeListPhrases = []string{
		"list all failure modes",
		"show all failure modes",
		"list all failures",
		"show all failures",
	}
	categoryListPhrases = []string{
		"list all categories",
		"show all categories",
	}
)

// listIntent reports whether query asks for every failure mode or every
// category, and returns the matching list payload.
func (s *Service) listIntent(query string) (format.Payload, bool) {
	q := strings.Join(strings.Fields(cases.Fold().String(query)), " ")
	switch {
	case containsAny(q, modeListPhrases):
		return format.AllFailureModes(s.cat), true
	case containsAny(q, categoryListPhrases):
		return format.AllCategories(s.cat), true
	default:
		return format.Payload{}, false
	}
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
