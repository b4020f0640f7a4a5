package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/masft/internal/resolve"
)

func TestUnavailable_EveryOperationFails(t *testing.T) {
	cause := errors.New("disk full")
	log := Unavailable(cause)
	ctx := context.Background()

	_, err := log.Record(ctx, "q", resolve.NoMatch{})
	assertUnavailable(t, err, "record", cause)

	_, err = log.History(ctx, 10)
	assertUnavailable(t, err, "history", cause)

	assertUnavailable(t, log.RecordView(ctx, "M"), "record view", cause)

	_, err = log.MostViewed(ctx, 10)
	assertUnavailable(t, err, "most viewed", cause)

	assertUnavailable(t, log.RecordFeedback(ctx, Feedback{}), "record feedback", cause)

	_, err = log.FeedbackStats(ctx)
	assertUnavailable(t, err, "feedback stats", cause)

	assert.NoError(t, log.Close())
}

func assertUnavailable(t *testing.T, err error, op string, cause error) {
	t.Helper()
	var ue *UnavailableError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, op, ue.Op)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestUnavailableError_Message(t *testing.T) {
	err := &UnavailableError{Op: "record", Err: errors.New("boom")}
	assert.Equal(t, "interaction log unavailable: record: boom", err.Error())

	bare := &UnavailableError{Op: "open"}
	assert.Equal(t, "interaction log unavailable: open", bare.Error())
}

func TestUnavailable_UnwrapsUnavailableCause(t *testing.T) {
	inner := errors.New("unable to open database file")
	log := Unavailable(unavailable("open", inner))

	_, err := log.Record(context.Background(), "q", resolve.NoMatch{})
	assertUnavailable(t, err, "record", inner)
	assert.Equal(t, "interaction log unavailable: record: open: unable to open database file", err.Error())

	bare := Unavailable(&UnavailableError{Op: "open"})
	err = bare.RecordView(context.Background(), "M")
	assert.Equal(t, "interaction log unavailable: record view: open", err.Error())
}
