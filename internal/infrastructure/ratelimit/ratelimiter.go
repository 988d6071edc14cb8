// Package ratelimit limits requests per key over a fixed window.
package ratelimit

import (
	"context"
	"time"
)

// Policy is a request budget per window.
type Policy struct {
	Limit  int
	Window time.Duration
}

// Result reports the decision and what is left of the window budget.
type Result struct {
	Allowed   bool
	Remaining int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, policy Policy) (Result, error)
}
