// Package ratelimit throttles clients that keep failing authentication.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter counts events per key over a sliding window.
type Limiter interface {
	// Exceeded reports whether key has reached the limit in the current
	// window.
	Exceeded(ctx context.Context, key string) (bool, error)
	// Hit records one event for key.
	Hit(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Exceeded(ctx context.Context, key string) (bool, error) {
	redisKey := l.key(key)
	windowStart := l.now().Add(-l.window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to count events: %w", err)
	}
	return zcard.Val() >= int64(l.limit), nil
}

func (l *RedisLimiter) Hit(ctx context.Context, key string) error {
	redisKey := l.key(key)
	now := l.now().UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now), Member: now})
	pipe.Expire(ctx, redisKey, l.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", l.key(key), err)
	}
	return nil
}

func (l *RedisLimiter) key(identifier string) string {
	return fmt.Sprintf("ratelimit:%s:%s", l.prefix, identifier)
}
