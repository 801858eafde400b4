// Package ratelimit bounds how often an identity may perform an action within
// a trailing time window. State is in-memory and process-local.
package ratelimit

import (
	"sync"
	"time"

	"github.com/rattananon/product-store-api/internal/clock"
)

// Limiter counts granted requests per identity over a sliding window. Checks
// and grants are atomic for a given identity: two concurrent calls can never
// both be granted past the threshold.
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	clock  clock.Clock
	hits   map[string][]time.Time
}

// New creates a Limiter allowing at most limit grants per identity within the
// trailing window.
func New(limit int, window time.Duration, clk clock.Clock) *Limiter {
	return &Limiter{
		limit:  limit,
		window: window,
		clock:  clk,
		hits:   make(map[string][]time.Time),
	}
}

// Allow reports whether the identity may proceed, recording the grant if so.
// Timestamps older than the window are aged out on every call, so stale
// entries never count toward the limit.
func (l *Limiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	cutoff := now.Add(-l.window)

	recent := l.hits[identity][:0]
	for _, ts := range l.hits[identity] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.limit {
		l.hits[identity] = recent
		return false
	}

	l.hits[identity] = append(recent, now)
	return true
}
