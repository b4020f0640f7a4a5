package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/roach88/masft/internal/catalog"
	"github.com/roach88/masft/internal/resolve"
)

// History returns up to limit records, most recent first.
// Records with equal timestamps come back in reverse insertion order.
// Returns an empty slice (not nil) when the log is empty.
func (s *Store) History(ctx context.Context, limit int) ([]InteractionRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, recorded_at, query, outcome, resolved_name, resolved_kind
		FROM interactions
		ORDER BY recorded_at DESC, seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, unavailable("history", err)
	}
	defer rows.Close()

	records := []InteractionRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, unavailable("history", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("history", fmt.Errorf("iterate interactions: %w", err))
	}
	return records, nil
}

// RecentQueries is History under the name used by the stats view.
func (s *Store) RecentQueries(ctx context.Context, limit int) ([]InteractionRecord, error) {
	return s.History(ctx, limit)
}

func scanRecord(rows *sql.Rows) (InteractionRecord, error) {
	var (
		rec        InteractionRecord
		recordedAt int64
		outcome    string
		name, kind sql.NullString
	)
	if err := rows.Scan(&rec.ID, &recordedAt, &rec.Query, &outcome, &name, &kind); err != nil {
		return InteractionRecord{}, fmt.Errorf("scan interaction: %w", err)
	}

	rec.RecordedAt = time.Unix(0, recordedAt).UTC()
	rec.Outcome = resolve.Outcome(outcome)
	if name.Valid {
		rec.ResolvedName = &name.String
	}
	if kind.Valid {
		k := catalog.EntityKind(kind.String)
		rec.ResolvedKind = &k
	}
	return rec, nil
}

// MostViewed returns view counts, highest first, ties by name.
func (s *Store) MostViewed(ctx context.Context, limit int) ([]ViewCount, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT failure_mode, COUNT(*) AS views
		FROM viewed_failure_modes
		GROUP BY failure_mode
		ORDER BY views DESC, failure_mode ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, unavailable("most viewed", err)
	}
	defer rows.Close()

	counts := []ViewCount{}
	for rows.Next() {
		var vc ViewCount
		if err := rows.Scan(&vc.FailureMode, &vc.Views); err != nil {
			return nil, unavailable("most viewed", fmt.Errorf("scan view count: %w", err))
		}
		counts = append(counts, vc)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("most viewed", err)
	}
	return counts, nil
}

// FeedbackStats returns the average rating per solution type and the number
// of feedback entries per failure mode.
func (s *Store) FeedbackStats(ctx context.Context) (FeedbackStats, error) {
	stats := FeedbackStats{ByType: []TypeRating{}, ByFailureMode: []ModeFeedback{}}

	rows, err := s.db.QueryContext(ctx, `
		SELECT solution_type, AVG(rating), COUNT(rating)
		FROM solution_feedback
		WHERE rating IS NOT NULL
		GROUP BY solution_type
		ORDER BY solution_type ASC
	`)
	if err != nil {
		return FeedbackStats{}, unavailable("feedback stats", err)
	}
	for rows.Next() {
		var (
			tr      TypeRating
			solType string
		)
		if err := rows.Scan(&solType, &tr.Average, &tr.Ratings); err != nil {
			rows.Close()
			return FeedbackStats{}, unavailable("feedback stats", err)
		}
		tr.SolutionType = SolutionType(solType)
		stats.ByType = append(stats.ByType, tr)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return FeedbackStats{}, unavailable("feedback stats", err)
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx, `
		SELECT failure_mode, COUNT(*) AS n
		FROM solution_feedback
		GROUP BY failure_mode
		ORDER BY n DESC, failure_mode ASC
	`)
	if err != nil {
		return FeedbackStats{}, unavailable("feedback stats", err)
	}
	defer rows.Close()
	for rows.Next() {
		var mf ModeFeedback
		if err := rows.Scan(&mf.FailureMode, &mf.Count); err != nil {
			return FeedbackStats{}, unavailable("feedback stats", err)
		}
		stats.ByFailureMode = append(stats.ByFailureMode, mf)
	}
	if err := rows.Err(); err != nil {
		return FeedbackStats{}, unavailable("feedback stats", err)
	}
	return stats, nil
}
