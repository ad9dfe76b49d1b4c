// Package ratelimit implements a per-key fixed-window budget tracker shared
// by the reveal and search paths.
package ratelimit

import (
	"sync"
	"time"
)

// Class names an independent rate budget.
type Class string

const (
	ClassReveal Class = "reveal"
	ClassSearch Class = "search"
)

// Budget is the policy for one operation class.
type Budget struct {
	Limit  int
	Window time.Duration
}

// Decision is the outcome of a TryConsume call.
// RetryAfter is set only when Allowed is false.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter tracks fixed-window counters keyed by (class, key).
// The counter mutation is atomic per key: two concurrent callers can never
// both pass when a single budget slot remains.
type Limiter struct {
	budgets map[Class]Budget
	buckets sync.Map // map[string]*bucket
	stop    chan struct{}

	// now is swapped in tests.
	now func() time.Time
}

type bucket struct {
	mu          sync.Mutex
	available   int
	windowStart time.Time

	// evicted flips under mu before the map entry is deleted, so a caller
	// holding a stale pointer re-fetches instead of mutating a dead bucket.
	evicted bool
}

// New creates a limiter with the given budgets and background cleanup of idle
// buckets. Call Stop() on shutdown.
func New(budgets map[Class]Budget, cleanupInterval time.Duration) *Limiter {
	l := &Limiter{
		budgets: budgets,
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	go l.cleanup(cleanupInterval)
	return l
}

// Stop terminates the background cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.stop)
}

// TryConsume takes one slot from the class budget for key.
// A class with no configured budget is never limited.
func (l *Limiter) TryConsume(class Class, key string) Decision {
	budget, ok := l.budgets[class]
	if !ok || budget.Limit <= 0 {
		return Decision{Allowed: true}
	}

	bucketKey := string(class) + "\x00" + key
	b := l.getBucket(bucketKey)

	b.mu.Lock()
	for b.evicted {
		b.mu.Unlock()
		b = l.getBucket(bucketKey)
		b.mu.Lock()
	}
	defer b.mu.Unlock()

	now := l.now()
	if now.Sub(b.windowStart) >= budget.Window {
		b.windowStart = now
		b.available = budget.Limit - 1
		return Decision{Allowed: true}
	}

	if b.available > 0 {
		b.available--
		return Decision{Allowed: true}
	}

	return Decision{
		Allowed:    false,
		RetryAfter: b.windowStart.Add(budget.Window).Sub(now),
	}
}

func (l *Limiter) getBucket(key string) *bucket {
	if v, ok := l.buckets.Load(key); ok {
		return v.(*bucket)
	}
	v, _ := l.buckets.LoadOrStore(key, &bucket{})
	return v.(*bucket)
}

func (l *Limiter) cleanup(interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.evictExpired(l.now())
		}
	}
}

// evictExpired drops buckets whose window has fully elapsed. An in-window
// bucket still holds budget state and must not be touched, so the threshold
// is the largest configured window, not a fixed idle timeout.
func (l *Limiter) evictExpired(now time.Time) {
	var maxWindow time.Duration
	for _, budget := range l.budgets {
		if budget.Window > maxWindow {
			maxWindow = budget.Window
		}
	}

	l.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		if now.Sub(b.windowStart) >= maxWindow {
			b.evicted = true
			l.buckets.Delete(key)
		}
		b.mu.Unlock()
		return true
	})
}
