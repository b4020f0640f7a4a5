// Package resolve maps free-text queries onto catalog entities.
//
// # Normalisation
//
// Queries and catalog text go through the same pipeline:
//  1. Unicode NFKC normalisation and full case folding
//  2. every rune that is not a letter or digit becomes a separator
//  3. split into words and drop stop words
//  4. stem: "ies" becomes "y" on words longer than four runes; otherwise a
//     trailing "s" is removed from words longer than three runes that do not
//     end in "ss", "us" or "is"
//
// # Scoring
//
// Each query token scores against the fields of every entity that contain it:
// identifier 10, short description 3, description 1. A category's description
// is its explanation; categories have no short description. Matching is exact
// token equality after normalisation.
//
// Entities below the minimum score are dropped. One strictly highest entity is
// Resolved; a tie is Ambiguous with the tied entities in declaration order
// (failure modes first, then categories); otherwise the result is NoMatch.
//
// Resolution is a pure function of the catalog and the query.
package resolve
