package ratelimit

import (
	"context"

	"officetools/internal/shared/logger"
)

// FallbackRateLimiter asks the primary limiter first and uses the secondary
// one when the primary errors, so a Redis outage degrades to per-instance
// limits instead of no limits.
type FallbackRateLimiter struct {
	primary   RateLimiter
	secondary RateLimiter
	logger    logger.Interface
}

func NewFallbackRateLimiter(primary, secondary RateLimiter, log logger.Interface) *FallbackRateLimiter {
	return &FallbackRateLimiter{primary: primary, secondary: secondary, logger: log}
}

func (l *FallbackRateLimiter) Allow(ctx context.Context, key string, policy Policy) (Result, error) {
	if l.primary != nil {
		res, err := l.primary.Allow(ctx, key, policy)
		if err == nil {
			return res, nil
		}
		l.logger.Warnw("primary rate limiter failed, using fallback", "key", key, "error", err)
	}
	return l.secondary.Allow(ctx, key, policy)
}
