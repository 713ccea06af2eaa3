package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter applies a fixed one-minute window of requests per client.
// It fails open: when Redis is unreachable the gateway keeps serving.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: time.Minute,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	key := "reqs:" + clientID

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return true, err
	}
	if count == 1 {
		// First hit in this window starts the clock.
		r.client.Expire(ctx, key, r.window)
	}
	return count <= int64(r.limit), nil
}
