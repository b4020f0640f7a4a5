package history

import (
	"context"
	"database/sql"

	"github.com/roach88/masft/internal/resolve"
)

// Record appends an interaction stamped with the store's clock and a new ID.
func (s *Store) Record(ctx context.Context, query string, result resolve.Result) (InteractionRecord, error) {
	rec := NewRecord(s.ids.Generate(), s.clock.Now(), query, result)
	if err := s.write(ctx, rec); err != nil {
		return InteractionRecord{}, err
	}
	return rec, nil
}

func (s *Store) write(ctx context.Context, rec InteractionRecord) error {
	var name, kind sql.NullString
	if rec.ResolvedName != nil {
		name = sql.NullString{String: *rec.ResolvedName, Valid: true}
	}
	if rec.ResolvedKind != nil {
		kind = sql.NullString{String: string(*rec.ResolvedKind), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interactions
		(id, recorded_at, query, outcome, resolved_name, resolved_kind)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.RecordedAt.UnixNano(),
		rec.Query,
		string(rec.Outcome),
		name,
		kind,
	)
	if err != nil {
		return unavailable("record", err)
	}
	return nil
}

// RecordView logs that a failure mode was browsed.
func (s *Store) RecordView(ctx context.Context, failureMode string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO viewed_failure_modes (failure_mode, viewed_at) VALUES (?, ?)`,
		failureMode, s.clock.Now().UnixNano(),
	)
	if err != nil {
		return unavailable("record view", err)
	}
	return nil
}

// RecordFeedback stores a solution rating.
// Invalid feedback is rejected with ErrInvalidFeedback before touching the database.
func (s *Store) RecordFeedback(ctx context.Context, fb Feedback) error {
	if err := fb.Validate(); err != nil {
		return err
	}

	var rating sql.NullInt64
	if fb.Rating > 0 {
		rating = sql.NullInt64{Int64: int64(fb.Rating), Valid: true}
	}
	var comment sql.NullString
	if fb.Comment != "" {
		comment = sql.NullString{String: fb.Comment, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO solution_feedback
		(failure_mode, solution_type, solution, rating, comment, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		fb.FailureMode,
		string(fb.SolutionType),
		fb.Solution,
		rating,
		comment,
		s.clock.Now().UnixNano(),
	)
	if err != nil {
		return unavailable("record feedback", err)
	}
	return nil
}
