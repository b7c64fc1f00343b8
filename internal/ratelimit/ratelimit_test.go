package ratelimit

import (
	"testing"
	"time"
)

func testLimiter(window time.Duration, limit int) (*Limiter, *time.Time) {
	current := time.Unix(1000, 0)
	limiter := NewLimiter(window, limit)
	limiter.now = func() time.Time { return current }

	return limiter, &current
}

func TestAllow_WithinLimit(t *testing.T) {
	limiter, _ := testLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("voter-a") {
			t.Fatalf("request %d rejected below the limit", i+1)
		}
	}

	if limiter.Allow("voter-a") {
		t.Fatalf("request above the limit allowed")
	}
}

func TestAllow_IndependentKeys(t *testing.T) {
	limiter, _ := testLimiter(time.Minute, 1)

	if !limiter.Allow("voter-a") {
		t.Fatalf("first key rejected")
	}

	if !limiter.Allow("voter-b") {
		t.Fatalf("second key throttled by the first key's hits")
	}
}

func TestAllow_WindowSlides(t *testing.T) {
	limiter, current := testLimiter(time.Minute, 2)

	limiter.Allow("voter-a")
	limiter.Allow("voter-a")

	if limiter.Allow("voter-a") {
		t.Fatalf("request above the limit allowed")
	}

	*current = current.Add(61 * time.Second)

	if !limiter.Allow("voter-a") {
		t.Fatalf("request rejected after the window passed")
	}
}

func TestAllow_PartialWindow(t *testing.T) {
	limiter, current := testLimiter(time.Minute, 2)

	limiter.Allow("voter-a")
	*current = current.Add(40 * time.Second)
	limiter.Allow("voter-a")

	//the first hit is still inside the window
	if limiter.Allow("voter-a") {
		t.Fatalf("limit not enforced across a partial window")
	}

	*current = current.Add(25 * time.Second)

	//now only the second hit remains
	if !limiter.Allow("voter-a") {
		t.Fatalf("request rejected after the oldest hit expired")
	}
}

func TestEvict(t *testing.T) {
	limiter, current := testLimiter(time.Minute, 5)

	limiter.Allow("voter-a")
	limiter.Allow("voter-b")

	*current = current.Add(30 * time.Second)
	limiter.Allow("voter-c")

	*current = current.Add(45 * time.Second)
	limiter.Evict()

	//voter-a and voter-b fell out of the window, voter-c did not
	if limiter.Keys() != 1 {
		t.Fatalf("expected 1 key after eviction, got %d", limiter.Keys())
	}
}
