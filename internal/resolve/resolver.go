package resolve

import (
	"sort"

	"github.com/roach88/masft/internal/catalog"
)

// Field weights.
const (
	WeightIdentifier       = 10
	WeightShortDescription = 3
	WeightDescription      = 1
)

// DefaultMinScore is the lowest score an entity needs to be considered.
const DefaultMinScore = 1

// Option configures a Resolver.
type Option func(*Resolver)

// WithMinScore raises the threshold below which entities are discarded.
// Values below DefaultMinScore are ignored.
func WithMinScore(n int) Option {
	return func(r *Resolver) {
		if n >= DefaultMinScore {
			r.minScore = n
		}
	}
}

// Resolver scores queries against a fixed catalog.
// The token index is built once; Resolve does not mutate the Resolver.
type Resolver struct {
	entries  []entry
	minScore int
}

type entry struct {
	entity     catalog.Entity
	identifier tokenSet
	short      tokenSet
	desc       tokenSet
}

// New indexes cat for resolution.
func New(cat *catalog.Catalog, opts ...Option) *Resolver {
	r := &Resolver{minScore: DefaultMinScore}
	for _, opt := range opts {
		opt(r)
	}

	for _, e := range cat.Entities() {
		switch v := e.(type) {
		case catalog.FailureMode:
			r.entries = append(r.entries, entry{
				entity:     v,
				identifier: newTokenSet(v.Name),
				short:      newTokenSet(v.ShortDescription),
				desc:       newTokenSet(v.Description),
			})
		case catalog.Category:
			r.entries = append(r.entries, entry{
				entity:     v,
				identifier: newTokenSet(v.Name),
				short:      tokenSet{},
				desc:       newTokenSet(v.Description),
			})
		}
	}
	return r
}

// MinScore returns the configured threshold.
func (r *Resolver) MinScore() int {
	return r.minScore
}

// Resolve returns the best match for query.
func (r *Resolver) Resolve(query string) Result {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return NoMatch{}
	}

	best := 0
	var top []catalog.Entity
	for _, e := range r.entries {
		s := e.score(tokens).Total
		if s < r.minScore {
			continue
		}
		switch {
		case s > best:
			best = s
			top = []catalog.Entity{e.entity}
		case s == best:
			top = append(top, e.entity)
		}
	}

	switch len(top) {
	case 0:
		return NoMatch{}
	case 1:
		return Resolved{Entity: top[0], Confidence: best}
	default:
		return Ambiguous{Candidates: top, Score: best}
	}
}

// Resolve is a convenience wrapper that indexes cat with default options.
// Use New when resolving many queries against the same catalog.
func Resolve(query string, cat *catalog.Catalog) Result {
	return New(cat).Resolve(query)
}

// Score is the per-field breakdown of one entity's score.
type Score struct {
	Entity           catalog.Entity `json:"-"`
	Name             string         `json:"name"`
	Kind             string         `json:"kind"`
	Identifier       int            `json:"identifier"`
	ShortDescription int            `json:"short_description"`
	Description      int            `json:"description"`
	Total            int            `json:"total"`
	Matched          []string       `json:"matched"`
}

func (e entry) score(tokens []string) Score {
	s := Score{
		Entity: e.entity,
		Name:   e.entity.Identifier(),
		Kind:   string(e.entity.Kind()),
	}
	for _, t := range tokens {
		hit := false
		if e.identifier.has(t) {
			s.Identifier += WeightIdentifier
			hit = true
		}
		if e.short.has(t) {
			s.ShortDescription += WeightShortDescription
			hit = true
		}
		if e.desc.has(t) {
			s.Description += WeightDescription
			hit = true
		}
		if hit {
			s.Matched = append(s.Matched, t)
		}
	}
	s.Total = s.Identifier + s.ShortDescription + s.Description
	return s
}

// Explain returns the scores of every entity with a non-zero score,
// highest first and in declaration order among equals.
func (r *Resolver) Explain(query string) []Score {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []Score{}
	}

	scores := make([]Score, 0, len(r.entries))
	for _, e := range r.entries {
		if s := e.score(tokens); s.Total > 0 {
			scores = append(scores, s)
		}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Total > scores[j].Total
	})
	return scores
}
