package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officetools/internal/shared/logger"
)

func TestMemoryRateLimiter_Allow(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	fixed := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }

	policy := Policy{Limit: 3, Window: time.Minute}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(ctx, "reviews:1.2.3.4", policy)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := limiter.Allow(ctx, "reviews:1.2.3.4", policy)
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	res, err = limiter.Allow(ctx, "reviews:5.6.7.8", policy)
	require.NoError(t, err)
	assert.True(t, res.Allowed, "other keys keep their own budget")
}

func TestMemoryRateLimiter_Refills(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	policy := Policy{Limit: 2, Window: time.Minute}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, _ := limiter.Allow(ctx, "k", policy)
		require.True(t, res.Allowed)
	}
	res, _ := limiter.Allow(ctx, "k", policy)
	require.False(t, res.Allowed)

	now = now.Add(31 * time.Second)
	res, _ = limiter.Allow(ctx, "k", policy)
	assert.True(t, res.Allowed)
}

func TestMemoryRateLimiter_EvictsIdleBuckets(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	policy := Policy{Limit: 5, Window: time.Hour}
	ctx := context.Background()

	for i := 0; i < 10000; i++ {
		_, err := limiter.Allow(ctx, fmt.Sprintf("ip-%d", i), policy)
		require.NoError(t, err)
		now = now.Add(time.Second)
	}
	// Keys older than one window were dropped as the clock moved on.
	assert.LessOrEqual(t, len(limiter.buckets), 3600+61)

	now = now.Add(2 * time.Hour)
	_, err := limiter.Allow(ctx, "fresh", policy)
	require.NoError(t, err)
	assert.Len(t, limiter.buckets, 1)
}

func TestMemoryRateLimiter_KeepsActiveBuckets(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	policy := Policy{Limit: 2, Window: 10 * time.Minute}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, _ := limiter.Allow(ctx, "busy", policy)
		require.True(t, res.Allowed)
	}

	// A sweep runs while the exhausted bucket is still inside its window.
	now = now.Add(2 * time.Minute)
	_, _ = limiter.Allow(ctx, "other", policy)

	res, _ := limiter.Allow(ctx, "busy", policy)
	assert.False(t, res.Allowed, "exhausted bucket must survive the sweep")
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, Policy) (Result, error) {
	return Result{}, errors.New("redis: connection refused")
}

type countingLimiter struct{ calls int }

func (c *countingLimiter) Allow(context.Context, string, Policy) (Result, error) {
	c.calls++
	return Result{Allowed: true, Remaining: 9}, nil
}

func TestFallbackRateLimiter(t *testing.T) {
	policy := Policy{Limit: 10, Window: time.Minute}

	t.Run("uses secondary when primary fails", func(t *testing.T) {
		secondary := &countingLimiter{}
		limiter := NewFallbackRateLimiter(failingLimiter{}, secondary, logger.NewNopLogger())

		res, err := limiter.Allow(context.Background(), "k", policy)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 1, secondary.calls)
	})

	t.Run("skips secondary when primary answers", func(t *testing.T) {
		primary := &countingLimiter{}
		secondary := &countingLimiter{}
		limiter := NewFallbackRateLimiter(primary, secondary, logger.NewNopLogger())

		_, err := limiter.Allow(context.Background(), "k", policy)
		require.NoError(t, err)
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 0, secondary.calls)
	})

	t.Run("nil primary goes straight to secondary", func(t *testing.T) {
		secondary := &countingLimiter{}
		limiter := NewFallbackRateLimiter(nil, secondary, logger.NewNopLogger())

		_, err := limiter.Allow(context.Background(), "k", policy)
		require.NoError(t, err)
		assert.Equal(t, 1, secondary.calls)
	})
}
