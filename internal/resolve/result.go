package resolve

import "github.com/roach88/masft/internal/catalog"

// Outcome names the kind of a Result.
type Outcome string

const (
	OutcomeResolved  Outcome = "resolved"
	OutcomeAmbiguous Outcome = "ambiguous"
	OutcomeNoMatch   Outcome = "no_match"
)

// Result is the outcome of resolving one query: Resolved, Ambiguous or NoMatch.
// The interface is sealed.
type Result interface {
	Outcome() Outcome
	isResult()
}

// Resolved is a single best match.
type Resolved struct {
	Entity     catalog.Entity
	Confidence int
}

// Ambiguous lists entities tied for the highest score.
type Ambiguous struct {
	Candidates []catalog.Entity
	Score      int
}

// NoMatch means nothing scored above the threshold.
type NoMatch struct{}

func (Resolved) Outcome() Outcome  { return OutcomeResolved }
func (Ambiguous) Outcome() Outcome { return OutcomeAmbiguous }
func (NoMatch) Outcome() Outcome   { return OutcomeNoMatch }

func (Resolved) isResult()  {}
func (Ambiguous) isResult() {}
func (NoMatch) isResult()   {}
