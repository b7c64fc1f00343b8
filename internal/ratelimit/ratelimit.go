package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a sliding-window request counter keyed by caller address. It is
// an explicit, injectable component, instances are created where they are
// used rather than held in package state.
type Limiter struct {
	mutex  sync.Mutex
	window time.Duration
	limit  int
	hits   map[string][]time.Time
	now    func() time.Time
}

func NewLimiter(window time.Duration, limit int) *Limiter {
	return &Limiter{
		window: window,
		limit:  limit,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Allow records a hit for key and reports whether it stays within the limit
// for the current window. Hits that fell out of the window are evicted on the
// way, a key with no remaining hits is removed entirely.
func (limiter *Limiter) Allow(key string) bool {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()

	now := limiter.now()
	cutoff := now.Add(-limiter.window)

	recent := limiter.hits[key][:0]
	for _, hit := range limiter.hits[key] {
		if hit.After(cutoff) {
			recent = append(recent, hit)
		}
	}

	if len(recent) >= limiter.limit {
		limiter.hits[key] = recent
		return false
	}

	limiter.hits[key] = append(recent, now)
	return true
}

// Evict drops every key whose hits all fell out of the window. Callers run it
// periodically to keep the map from growing with one-off addresses.
func (limiter *Limiter) Evict() {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()

	cutoff := limiter.now().Add(-limiter.window)

	for key, hits := range limiter.hits {
		stale := true
		for _, hit := range hits {
			if hit.After(cutoff) {
				stale = false
				break
			}
		}

		if stale {
			delete(limiter.hits, key)
		}
	}
}

func (limiter *Limiter) Keys() int {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()

	return len(limiter.hits)
}
