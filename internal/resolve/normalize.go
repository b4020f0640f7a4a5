package resolve

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// stopWords are dropped from queries and catalog text, both before and after
// stemming.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		a about all an analysis analyze and are can demonstrate demonstration
		describe detail details do does example examples explain for give
		happen happens how i in is it list me of on or please show solution
		solutions tell the to what when why with you`) {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether w (already folded) is ignored by the resolver.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// Tokenize normalises s into its distinct tokens, in first-seen order.
func Tokenize(s string) []string {
	folded := cases.Fold().String(norm.NFKC.String(s))
	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(words))
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if IsStopWord(w) {
			continue
		}
		w = Stem(w)
		if IsStopWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		tokens = append(tokens, w)
	}
	return tokens
}

// Stem strips plural suffixes.
func Stem(w string) string {
	n := utf8.RuneCountInString(w)
	switch {
	case n > 4 && strings.HasSuffix(w, "ies"):
		return strings.TrimSuffix(w, "ies") + "y"
	case n > 3 && strings.HasSuffix(w, "s") &&
		!strings.HasSuffix(w, "ss") &&
		!strings.HasSuffix(w, "us") &&
		!strings.HasSuffix(w, "is"):
		return strings.TrimSuffix(w, "s")
	default:
		return w
	}
}

type tokenSet map[string]struct{}

func newTokenSet(s string) tokenSet {
	tokens := Tokenize(s)
	set := make(tokenSet, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func (s tokenSet) has(t string) bool {
	_, ok := s[t]
	return ok
}
