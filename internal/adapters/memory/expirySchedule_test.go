package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpirySchedule_DueOldestFirst(t *testing.T) {
	s := NewExpirySchedule()
	ctx := context.Background()
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Schedule(ctx, "b", now.Add(-time.Minute)))
	require.NoError(t, s.Schedule(ctx, "a", now.Add(-time.Hour)))
	require.NoError(t, s.Schedule(ctx, "c", now))
	require.NoError(t, s.Schedule(ctx, "future", now.Add(time.Second)))

	due, err := s.Due(ctx, now, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, due)

	due, err = s.Due(ctx, now, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, due)

	require.NoError(t, s.Remove(ctx, "a", "b", "missing"))
	assert.Equal(t, 2, s.Len())
}
