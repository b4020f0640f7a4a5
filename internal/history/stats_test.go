package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MostViewed(t *testing.T) {
	s, _ := createTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Miscommunication", "Verbosity Issues", "Miscommunication", "Decision Paralysis", "Verbosity Issues", "Miscommunication"} {
		require.NoError(t, s.RecordView(ctx, name))
	}

	got, err := s.MostViewed(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []ViewCount{
		{FailureMode: "Miscommunication", Views: 3},
		{FailureMode: "Verbosity Issues", Views: 2},
		{FailureMode: "Decision Paralysis", Views: 1},
	}, got)

	top, err := s.MostViewed(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestStore_MostViewedEmpty(t *testing.T) {
	s, _ := createTestStore(t)

	got, err := s.MostViewed(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []ViewCount{}, got)
}

func TestStore_FeedbackStats(t *testing.T) {
	s, _ := createTestStore(t)
	ctx := context.Background()

	entries := []Feedback{
		{FailureMode: "Miscommunication", SolutionType: SolutionTactical, Solution: "t1", Rating: 4},
		{FailureMode: "Miscommunication", SolutionType: SolutionTactical, Solution: "t2", Rating: 2},
		{FailureMode: "Miscommunication", SolutionType: SolutionStructural, Solution: "s1", Rating: 5, Comment: "great"},
		{FailureMode: "Decision Paralysis", SolutionType: SolutionStructural, Solution: "s1"},
	}
	for _, fb := range entries {
		require.NoError(t, s.RecordFeedback(ctx, fb))
	}

	stats, err := s.FeedbackStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []TypeRating{
		{SolutionType: SolutionStructural, Average: 5, Ratings: 1},
		{SolutionType: SolutionTactical, Average: 3, Ratings: 2},
	}, stats.ByType)
	assert.Equal(t, []ModeFeedback{
		{FailureMode: "Miscommunication", Count: 3},
		{FailureMode: "Decision Paralysis", Count: 1},
	}, stats.ByFailureMode)
}

func TestStore_FeedbackStatsEmpty(t *testing.T) {
	s, _ := createTestStore(t)

	stats, err := s.FeedbackStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats.ByType)
	assert.Empty(t, stats.ByFailureMode)
}

func TestFeedback_Validate(t *testing.T) {
	valid := Feedback{FailureMode: "M", SolutionType: SolutionTactical, Solution: "s", Rating: 3}
	require.NoError(t, valid.Validate())

	tests := map[string]func(*Feedback){
		"missing failure mode": func(f *Feedback) { f.FailureMode = "" },
		"unknown type":         func(f *Feedback) { f.SolutionType = "strategic" },
		"missing solution":     func(f *Feedback) { f.Solution = "" },
		"rating too high":      func(f *Feedback) { f.Rating = 6 },
		"negative rating":      func(f *Feedback) { f.Rating = -1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			fb := valid
			mutate(&fb)
			err := fb.Validate()
			assert.True(t, errors.Is(err, ErrInvalidFeedback), "got %v", err)
		})
	}
}

func TestStore_RecordFeedbackRejectsInvalid(t *testing.T) {
	s, _ := createTestStore(t)

	err := s.RecordFeedback(context.Background(), Feedback{FailureMode: "M", SolutionType: "other", Solution: "s"})
	assert.ErrorIs(t, err, ErrInvalidFeedback)
	assert.False(t, IsUnavailable(err))
}
