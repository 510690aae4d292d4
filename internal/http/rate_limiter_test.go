package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(capacity int, window time.Duration) (*RateLimiter, *time.Time) {
	rl := NewRateLimiter(capacity, window)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter_AllowAndRefill(t *testing.T) {
	rl, now := newTestLimiter(3, time.Minute)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"))

	*now = now.Add(time.Minute)
	assert.True(t, rl.Allow("1.2.3.4"), "bucket should refill after the window")
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl, now := newTestLimiter(1, time.Minute)
	defer rl.Stop()

	rl.Allow("a")
	*now = now.Add(30 * time.Minute)
	rl.Allow("b")

	*now = now.Add(31 * time.Minute)
	rl.cleanup()

	rl.mu.Lock()
	_, hasA := rl.clients["a"]
	_, hasB := rl.clients["b"]
	rl.mu.Unlock()
	assert.False(t, hasA, "idle client should be removed")
	assert.True(t, hasB)
}

func TestRateLimiter_ZeroCapacity(t *testing.T) {
	rl, _ := newTestLimiter(0, time.Minute)
	defer rl.Stop()
	assert.False(t, rl.Allow("x"))
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
