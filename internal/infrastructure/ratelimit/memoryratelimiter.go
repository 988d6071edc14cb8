package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultSweepInterval = time.Minute

type bucket struct {
	limiter  *rate.Limiter
	window   time.Duration
	lastSeen time.Time
}

// MemoryRateLimiter keeps one token bucket per key in process memory.
// A bucket holds Limit tokens and refills one token every Window/Limit.
// Buckets idle for a full window are full again and get dropped.
type MemoryRateLimiter struct {
	mu            sync.Mutex
	buckets       map[string]*bucket
	sweepInterval time.Duration
	lastSweep     time.Time
	now           func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		buckets:       make(map[string]*bucket),
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string, policy Policy) (Result, error) {
	now := l.now()
	lim := l.limiterFor(key, policy, now)

	allowed := lim.AllowN(now, 1)
	remaining := int(lim.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return Result{Allowed: allowed, Remaining: remaining}, nil
}

func (l *MemoryRateLimiter) limiterFor(key string, policy Policy, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.sweepInterval {
		l.sweep(now)
	}

	if b, ok := l.buckets[key]; ok {
		b.lastSeen = now
		return b.limiter
	}
	every := rate.Every(policy.Window / time.Duration(max(policy.Limit, 1)))
	b := &bucket{
		limiter:  rate.NewLimiter(every, policy.Limit),
		window:   policy.Window,
		lastSeen: now,
	}
	l.buckets[key] = b
	return b.limiter
}

// sweep must be called with mu held.
func (l *MemoryRateLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= b.window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
