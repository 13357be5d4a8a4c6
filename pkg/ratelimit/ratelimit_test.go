package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestAllow(t *testing.T) {
	t.Run("admits up to the budget then rejects", func(t *testing.T) {
		clock := newFakeClock()
		limiter := New(3, time.Minute, WithClock(clock.Now))

		for i := 0; i < 3; i++ {
			allowed, _ := limiter.Allow("1.2.3.4")
			require.True(t, allowed, "request %d should be admitted", i+1)
		}

		allowed, retryAfter := limiter.Allow("1.2.3.4")
		assert.False(t, allowed)
		assert.Equal(t, time.Minute, retryAfter)
	})

	t.Run("identifiers are independent", func(t *testing.T) {
		clock := newFakeClock()
		limiter := New(1, time.Minute, WithClock(clock.Now))

		allowed, _ := limiter.Allow("1.2.3.4")
		require.True(t, allowed)
		allowed, _ = limiter.Allow("1.2.3.4")
		require.False(t, allowed)

		allowed, _ = limiter.Allow("5.6.7.8")
		assert.True(t, allowed)
	})

	t.Run("expired timestamps free the budget", func(t *testing.T) {
		clock := newFakeClock()
		limiter := New(2, time.Minute, WithClock(clock.Now))

		limiter.Allow("1.2.3.4")
		limiter.Allow("1.2.3.4")
		allowed, _ := limiter.Allow("1.2.3.4")
		require.False(t, allowed)

		clock.Advance(61 * time.Second)
		allowed, _ = limiter.Allow("1.2.3.4")
		assert.True(t, allowed)
	})

	t.Run("retry-after shrinks as the oldest request ages", func(t *testing.T) {
		clock := newFakeClock()
		limiter := New(1, time.Minute, WithClock(clock.Now))

		limiter.Allow("1.2.3.4")
		clock.Advance(40 * time.Second)

		allowed, retryAfter := limiter.Allow("1.2.3.4")
		require.False(t, allowed)
		assert.Equal(t, 20*time.Second, retryAfter)
	})

	t.Run("retry-after is never below one second", func(t *testing.T) {
		clock := newFakeClock()
		limiter := New(1, time.Minute, WithClock(clock.Now))

		limiter.Allow("1.2.3.4")
		clock.Advance(time.Minute - 100*time.Millisecond)

		allowed, retryAfter := limiter.Allow("1.2.3.4")
		require.False(t, allowed)
		assert.Equal(t, time.Second, retryAfter)
	})

	t.Run("a burst after a quiet spell uses the whole budget", func(t *testing.T) {
		clock := newFakeClock()
		limiter := New(3, time.Minute, WithClock(clock.Now))

		limiter.Allow("1.2.3.4")
		clock.Advance(2 * time.Minute)

		for i := 0; i < 3; i++ {
			allowed, _ := limiter.Allow("1.2.3.4")
			require.True(t, allowed)
		}
		allowed, _ := limiter.Allow("1.2.3.4")
		assert.False(t, allowed)
	})
}

func TestAccessors(t *testing.T) {
	limiter := New(20, 45*time.Second)
	assert.Equal(t, 20, limiter.MaxRequests())
	assert.Equal(t, 45*time.Second, limiter.Window())
}
