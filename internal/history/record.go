package history

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/masft/internal/catalog"
	"github.com/roach88/masft/internal/resolve"
)

// DefaultHistoryLimit is used when History is called with limit <= 0.
const DefaultHistoryLimit = 10

// InteractionRecord is one logged query.
// ResolvedName and ResolvedKind are set only when Outcome is resolved.
type InteractionRecord struct {
	ID           string              `json:"id"`
	RecordedAt   time.Time           `json:"recorded_at"`
	Query        string              `json:"query"`
	Outcome      resolve.Outcome     `json:"outcome"`
	ResolvedName *string             `json:"resolved_name"`
	ResolvedKind *catalog.EntityKind `json:"resolved_kind"`
}

// NewRecord derives the record for a query and the result it produced.
func NewRecord(id string, at time.Time, query string, result resolve.Result) InteractionRecord {
	rec := InteractionRecord{
		ID:         id,
		RecordedAt: at.Round(0).UTC(),
		Query:      query,
		Outcome:    resolve.OutcomeNoMatch,
	}
	if result != nil {
		rec.Outcome = result.Outcome()
	}
	if r, ok := result.(resolve.Resolved); ok && r.Entity != nil {
		name := r.Entity.Identifier()
		kind := r.Entity.Kind()
		rec.ResolvedName = &name
		rec.ResolvedKind = &kind
	}
	return rec
}

// SolutionType is the kind of solution a feedback entry rates.
type SolutionType string

const (
	SolutionTactical   SolutionType = "tactical"
	SolutionStructural SolutionType = "structural"
)

// Feedback rates one suggested solution. Rating 0 means unrated.
type Feedback struct {
	FailureMode  string       `json:"failure_mode"`
	SolutionType SolutionType `json:"solution_type"`
	Solution     string       `json:"solution"`
	Rating       int          `json:"rating,omitempty"`
	Comment      string       `json:"comment,omitempty"`
}

// Validate checks the fields that the store constrains.
func (f Feedback) Validate() error {
	switch {
	case f.FailureMode == "":
		return fmt.Errorf("%w: failure mode is required", ErrInvalidFeedback)
	case f.SolutionType != SolutionTactical && f.SolutionType != SolutionStructural:
		return fmt.Errorf("%w: solution type %q is not tactical or structural", ErrInvalidFeedback, f.SolutionType)
	case f.Solution == "":
		return fmt.Errorf("%w: solution is required", ErrInvalidFeedback)
	case f.Rating < 0 || f.Rating > 5:
		return fmt.Errorf("%w: rating %d is outside 1-5", ErrInvalidFeedback, f.Rating)
	}
	return nil
}

// ViewCount is how often a failure mode was browsed.
type ViewCount struct {
	FailureMode string `json:"failure_mode"`
	Views       int    `json:"views"`
}

// TypeRating is the average rating of one solution type.
type TypeRating struct {
	SolutionType SolutionType `json:"solution_type"`
	Average      float64      `json:"average_rating"`
	Ratings      int          `json:"ratings"`
}

// ModeFeedback is the number of feedback entries for a failure mode.
type ModeFeedback struct {
	FailureMode string `json:"failure_mode"`
	Count       int    `json:"count"`
}

// FeedbackStats summarises solution feedback.
type FeedbackStats struct {
	ByType        []TypeRating   `json:"by_solution_type"`
	ByFailureMode []ModeFeedback `json:"by_failure_mode"`
}

// Log is the interaction log.
// Every storage failure is returned as an *UnavailableError.
type Log interface {
	// Record appends the interaction for query and the result it produced.
	Record(ctx context.Context, query string, result resolve.Result) (InteractionRecord, error)
	// History returns up to limit records, most recent first.
	History(ctx context.Context, limit int) ([]InteractionRecord, error)

	RecordView(ctx context.Context, failureMode string) error
	MostViewed(ctx context.Context, limit int) ([]ViewCount, error)
	RecordFeedback(ctx context.Context, fb Feedback) error
	FeedbackStats(ctx context.Context) (FeedbackStats, error)

	Close() error
}
