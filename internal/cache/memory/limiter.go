// Package memory provides in-process fallbacks for the Redis-backed cache
// types, used when Redis is disabled.
package memory

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/hashedalex/polydelta/internal/domain"
)

// idleTTL is how long an unused per-key bucket is kept. The map is swept
// at most once per idleTTL, so a bucket lives between idleTTL and twice that.
const idleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter implements domain.RateLimiter with one token bucket per key.
// A bucket refills at limit tokens per window and bursts up to limit, which
// approximates the Redis sliding window on a single replica.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
	sweeps    int
	now       func() time.Time
}

// NewRateLimiter creates an empty RateLimiter.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow takes one token from key's bucket. It never returns an error.
func (l *RateLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 || window <= 0 {
		return true, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	if now.Sub(l.lastSweep) >= idleTTL {
		l.evictIdle(now)
	}

	return b.limiter.AllowN(now, 1), nil
}

// evictIdle drops buckets not touched within idleTTL. Callers hold mu.
func (l *RateLimiter) evictIdle(now time.Time) {
	l.lastSweep = now
	l.sweeps++
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) > idleTTL {
			delete(l.buckets, k)
		}
	}
}

// Compile-time interface check.
var _ domain.RateLimiter = (*RateLimiter)(nil)
