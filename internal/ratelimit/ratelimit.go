// Package ratelimit throttles the unauthenticated auth endpoints.
//
// The Redis limiter implements a fixed window per key: the first hit of a
// window creates a counter with the window as TTL, later hits increment it.
// When no Redis address is configured a no-op limiter is used instead.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/chronos/internal/config"
	"github.com/MKhiriev/chronos/internal/logger"
)

// ErrLimitExceeded is returned when a key has used up its window.
var ErrLimitExceeded = errors.New("rate limit exceeded")

const keyPrefix = "chronos:rate_limit:"

// Limiter decides whether one more request for key fits into the current
// window.
type Limiter interface {
	Allow(ctx context.Context, key string) error
}

type redisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	logger *logger.Logger
}

// NewRedisLimiter constructs a fixed-window [Limiter] allowing limit hits per
// window on top of client.
func NewRedisLimiter(client redis.Cmdable, limit int, window time.Duration, logger *logger.Logger) Limiter {
	return &redisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		logger: logger,
	}
}

// Allow returns [ErrLimitExceeded] once key has been hit more than limit
// times in the current window. Redis failures are returned wrapped so the
// caller can choose to fail open.
func (l *redisLimiter) Allow(ctx context.Context, key string) error {
	redisKey := keyPrefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return fmt.Errorf("error incrementing rate limit counter: %w", err)
	}

	if count == 1 {
		if err = l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return fmt.Errorf("error setting rate limit window: %w", err)
		}
	}

	if count > l.limit {
		logger.FromContext(ctx).Warn().
			Str("func", "*redisLimiter.Allow").
			Str("key", key).
			Int64("count", count).
			Msg("rate limit exceeded")
		return ErrLimitExceeded
	}

	return nil
}

type nopLimiter struct{}

// NewNopLimiter returns a [Limiter] that allows everything.
func NewNopLimiter() Limiter {
	return nopLimiter{}
}

func (nopLimiter) Allow(context.Context, string) error {
	return nil
}

// NewLimiter connects to Redis when cfg.Redis.Address is set and returns a
// no-op limiter otherwise. The returned close function releases the client.
func NewLimiter(ctx context.Context, redisCfg config.Redis, serverCfg config.Server, logger *logger.Logger) (Limiter, func() error, error) {
	if redisCfg.Address == "" {
		logger.Info().Msg("redis is not configured, auth endpoints are not rate limited")
		return NewNopLimiter(), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Address,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	logger.Info().Str("address", redisCfg.Address).Msg("connected to redis")
	return NewRedisLimiter(client, serverCfg.OTPRateLimit, serverCfg.OTPRateWindow, logger), client.Close, nil
}
