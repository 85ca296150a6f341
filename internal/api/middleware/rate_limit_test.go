package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterRefill(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(3, 3*time.Second)
	rl.lastTime = now
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if !rl.Allow() {
			t.Fatalf("request %d rejected", i)
		}
	}
	if rl.Allow() {
		t.Fatal("fourth request allowed without refill")
	}

	// Two half-second steps add up to one token.
	now = now.Add(500 * time.Millisecond)
	if rl.Allow() {
		t.Fatal("allowed after half a token")
	}
	now = now.Add(500 * time.Millisecond)
	if !rl.Allow() {
		t.Fatal("rejected after a full token accumulated")
	}

	// Capacity caps the refill.
	now = now.Add(time.Hour)
	for i := 0; i < 3; i++ {
		if !rl.Allow() {
			t.Fatalf("request %d after idle rejected", i)
		}
	}
	if rl.Allow() {
		t.Error("refill exceeded capacity")
	}
}
