package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// ExpiryKey کلید ZSET زمان انقضای درخواست‌های مرخصی؛ امتیاز هر عضو زمان انقضا (unix) است
const ExpiryKey = "leave:expiry"

type ExpiryRepositoryRedis struct {
	Client *redis.Client
	Key    string
}

func NewExpiryRepositoryRedis(client *redis.Client) *ExpiryRepositoryRedis {
	return &ExpiryRepositoryRedis{
		Client: client,
		Key:    ExpiryKey,
	}
}

// Schedule افزودن شناسه با زمان انقضا به ZSET
func (r *ExpiryRepositoryRedis) Schedule(ctx context.Context, id string, at time.Time) error {
	z := &redis.Z{
		Score:  float64(at.Unix()),
		Member: id,
	}
	return r.Client.ZAdd(ctx, r.Key, z).Err()
}

// Due شناسه‌هایی که زمان انقضایشان تا now رسیده است، قدیمی‌ترین اول
func (r *ExpiryRepositoryRedis) Due(ctx context.Context, now time.Time, limit int64) ([]string, error) {
	return r.Client.ZRangeByScore(ctx, r.Key, dueRange(now, limit)).Result()
}

func (r *ExpiryRepositoryRedis) Remove(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = id
	}
	return r.Client.ZRem(ctx, r.Key, members...).Err()
}

func dueRange(now time.Time, limit int64) *redis.ZRangeBy {
	return &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: limit,
	}
}
