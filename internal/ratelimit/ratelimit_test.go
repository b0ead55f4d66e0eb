package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/chronos/internal/config"
	"github.com/MKhiriev/chronos/internal/logger"
)

// fakeCounter keeps counters in memory and records the TTLs it was asked to
// set. Only the commands used by the limiter are implemented.
type fakeCounter struct {
	redis.Cmdable

	counts    map[string]int64
	expires   map[string]time.Duration
	incrErr   error
	expireErr error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{
		counts:  make(map[string]int64),
		expires: make(map[string]time.Duration),
	}
}

func (f *fakeCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.incrErr != nil {
		return redis.NewIntResult(0, f.incrErr)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounter) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	if f.expireErr != nil {
		return redis.NewBoolResult(false, f.expireErr)
	}
	f.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func TestRedisLimiter_Allow(t *testing.T) {
	counter := newFakeCounter()
	limiter := NewRedisLimiter(counter, 3, time.Minute, logger.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Allow(ctx, "otp:10.0.0.1"))
	}

	err := limiter.Allow(ctx, "otp:10.0.0.1")
	assert.ErrorIs(t, err, ErrLimitExceeded)

	// other keys have their own window
	assert.NoError(t, limiter.Allow(ctx, "otp:10.0.0.2"))

	assert.Equal(t, time.Minute, counter.expires[keyPrefix+"otp:10.0.0.1"])
	assert.Len(t, counter.expires, 2)
}

func TestRedisLimiter_Allow_ExpireOnlyOnFirstHit(t *testing.T) {
	counter := newFakeCounter()
	limiter := NewRedisLimiter(counter, 10, time.Minute, logger.Nop())

	require.NoError(t, limiter.Allow(context.Background(), "k"))
	counter.expires = make(map[string]time.Duration)
	require.NoError(t, limiter.Allow(context.Background(), "k"))

	assert.Empty(t, counter.expires)
}

func TestRedisLimiter_Allow_RedisErrors(t *testing.T) {
	t.Run("incr", func(t *testing.T) {
		counter := newFakeCounter()
		counter.incrErr = errors.New("connection refused")
		limiter := NewRedisLimiter(counter, 3, time.Minute, logger.Nop())

		err := limiter.Allow(context.Background(), "k")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrLimitExceeded)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("expire", func(t *testing.T) {
		counter := newFakeCounter()
		counter.expireErr = errors.New("readonly replica")
		limiter := NewRedisLimiter(counter, 3, time.Minute, logger.Nop())

		err := limiter.Allow(context.Background(), "k")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "error setting rate limit window")
	})
}

func TestNopLimiter_Allow(t *testing.T) {
	limiter := NewNopLimiter()
	for i := 0; i < 100; i++ {
		require.NoError(t, limiter.Allow(context.Background(), "k"))
	}
}

func TestNewLimiter_WithoutRedis(t *testing.T) {
	limiter, closeFn, err := NewLimiter(context.Background(), config.Redis{}, config.Server{}, logger.Nop())

	require.NoError(t, err)
	assert.IsType(t, nopLimiter{}, limiter)
	assert.NoError(t, closeFn())
}
