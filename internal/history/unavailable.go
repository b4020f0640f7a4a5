package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/masft/internal/resolve"
)

// Unavailable returns a Log whose every operation fails with an
// *UnavailableError wrapping cause. It stands in for a store that could not
// be opened so that queries are still answered. A cause that is itself an
// *UnavailableError is unwrapped so messages name the log only once.
func Unavailable(cause error) Log {
	var ue *UnavailableError
	if errors.As(cause, &ue) {
		if ue.Err == nil {
			cause = errors.New(ue.Op)
		} else {
			cause = fmt.Errorf("%s: %w", ue.Op, ue.Err)
		}
	}
	return unavailableLog{cause: cause}
}

type unavailableLog struct {
	cause error
}

func (u unavailableLog) fail(op string) error {
	return unavailable(op, u.cause)
}

func (u unavailableLog) Record(context.Context, string, resolve.Result) (InteractionRecord, error) {
	return InteractionRecord{}, u.fail("record")
}

func (u unavailableLog) History(context.Context, int) ([]InteractionRecord, error) {
	return nil, u.fail("history")
}

func (u unavailableLog) RecordView(context.Context, string) error {
	return u.fail("record view")
}

func (u unavailableLog) MostViewed(context.Context, int) ([]ViewCount, error) {
	return nil, u.fail("most viewed")
}

func (u unavailableLog) RecordFeedback(context.Context, Feedback) error {
	return u.fail("record feedback")
}

func (u unavailableLog) FeedbackStats(context.Context) (FeedbackStats, error) {
	return FeedbackStats{}, u.fail("feedback stats")
}

func (unavailableLog) Close() error { return nil }
