package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a fixed-window counter shared by all instances.
type RedisRateLimiter struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, prefix: "ratelimit", now: time.Now}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, policy Policy) (Result, error) {
	bucket := l.now().Unix() / int64(policy.Window.Seconds())
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, bucket)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, policy.Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	count := int(incr.Val())
	remaining := policy.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{Allowed: count <= policy.Limit, Remaining: remaining}, nil
}
