package redis

import (
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestDueRange(t *testing.T) {
	now := time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)
	r := dueRange(now, 50)
	assert.Equal(t, "-inf", r.Min)
	assert.Equal(t, "1746869400", r.Max)
	assert.Equal(t, int64(50), r.Count)
	assert.Equal(t, int64(0), r.Offset)
}

func TestNewExpiryRepositoryRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	repo := NewExpiryRepositoryRedis(client)
	assert.Equal(t, ExpiryKey, repo.Key)
	assert.Same(t, client, repo.Client)
}
