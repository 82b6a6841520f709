package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpired(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := &Leave{CreatedAt: created}

	assert.Equal(t, created.Add(24*time.Hour), l.ExpiresAt())
	assert.False(t, l.Expired(created))
	assert.False(t, l.Expired(created.Add(24*time.Hour-time.Second)))
	assert.True(t, l.Expired(created.Add(24*time.Hour)))
	assert.True(t, l.Expired(created.Add(25*time.Hour)))
}

func TestDay(t *testing.T) {
	ts := time.Date(2025, 3, 1, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Day(ts))
}
