// Package ratelimit implements a sliding-window request limiter keyed by
// an arbitrary client identifier (typically the source IP). State lives
// in process memory only; it is an abuse control, not a security
// boundary, so losing the windows on restart is fine.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter admits at most MaxRequests per identifier within a trailing
// Window. Per-identifier timestamp lists are bounded by MaxRequests.
type Limiter struct {
	maxRequests int
	window      time.Duration
	now         func() time.Time

	mu       sync.Mutex
	requests map[string][]time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(maxRequests int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		requests:    make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records a request for identifier if it fits in the window.
// When the request is rejected, retryAfter holds how long until the
// oldest retained timestamp leaves the window (at least one second so a
// Retry-After header is never zero).
func (l *Limiter) Allow(identifier string) (allowed bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.window)

	// Discard timestamps that fell out of the window
	kept := l.requests[identifier][:0]
	for _, t := range l.requests[identifier] {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.maxRequests {
		l.requests[identifier] = kept
		wait := kept[0].Sub(windowStart)
		if wait < time.Second {
			wait = time.Second
		}
		return false, wait
	}

	l.requests[identifier] = append(kept, now)
	return true, 0
}

// MaxRequests returns the configured per-window request budget.
func (l *Limiter) MaxRequests() int { return l.maxRequests }

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration { return l.window }
