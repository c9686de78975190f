// Package ratelimit implements a fixed-size sliding window per client key.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Store keeps per-key timestamp windows. Injectable so a bounded or shared
// implementation can replace the in-memory one. The Limiter serializes all
// access; implementations do not need their own locking for correctness.
type Store interface {
	Window(key string) []time.Time
	SetWindow(key string, window []time.Time)
	// PruneOlderThan drops keys whose newest timestamp is older than now-age.
	PruneOlderThan(age time.Duration) int
}

// MemoryStore is the default in-process Store. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string][]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: map[string][]time.Time{}}
}

func (s *MemoryStore) Window(key string) []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.windows[key]
	out := make([]time.Time, len(w))
	copy(out, w)
	return out
}

func (s *MemoryStore) SetWindow(key string, window []time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(window) == 0 {
		delete(s.windows, key)
		return
	}
	s.windows[key] = window
}

func (s *MemoryStore) PruneOlderThan(age time.Duration) int {
	cutoff := time.Now().Add(-age)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, w := range s.windows {
		if len(w) == 0 || w[len(w)-1].Before(cutoff) {
			delete(s.windows, key)
			removed++
		}
	}
	return removed
}

// Limiter admits at most limit requests per key within the window.
type Limiter struct {
	mu     sync.Mutex
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewLimiter clamps a non-positive limit to 1 and a non-positive window to
// one minute.
func NewLimiter(store Store, limit int, window time.Duration) *Limiter {
	if store == nil {
		store = NewMemoryStore()
	}
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{store: store, limit: limit, window: window, now: time.Now}
}

// Allow records the request when admitted. When denied, retryAfter is the
// whole-second wait derived from the oldest retained timestamp. The whole
// read-filter-check-write runs under one lock, so concurrent requests for
// the same key cannot slip past the limit or drop each other's timestamps.
func (l *Limiter) Allow(key string) (ok bool, retryAfter int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	prev := l.store.Window(key)
	kept := prev[:0]
	for _, ts := range prev {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.limit {
		l.store.SetWindow(key, kept)
		wait := l.window - now.Sub(kept[0])
		secs := int(math.Ceil(wait.Seconds()))
		if secs < 1 {
			secs = 1
		}
		return false, secs
	}

	kept = append(kept, now)
	l.store.SetWindow(key, kept)
	return true, 0
}
