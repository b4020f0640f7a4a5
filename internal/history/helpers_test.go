package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/masft/internal/catalog"
	"github.com/roach88/masft/internal/testutil"
)

// createTestStore opens a store in a temp dir with a deterministic clock and IDs.
func createTestStore(t *testing.T) (*Store, *testutil.DeterministicClock) {
	t.Helper()
	clock := testutil.NewDeterministicClock()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"),
		WithClock(clock),
		WithIDGenerator(testutil.NewSequentialIDs("rec")),
	)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, clock
}

func failureMode(name string) catalog.FailureMode {
	return catalog.FailureMode{Name: name, Category: "Communication Failures"}
}

func ptr[T any](v T) *T {
	return &v
}
