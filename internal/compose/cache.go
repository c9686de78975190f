package compose

import (
	"sync"
	"time"
)

// CachedRewrite is one accepted polish result.
type CachedRewrite struct {
	Line2   string
	Line3   string
	SavedAt time.Time
}

// CacheStore holds accepted rewrites keyed by request fingerprint. It is an
// explicit injectable dependency so deployments can bound it or share it; it
// is never an ambient global.
type CacheStore interface {
	Get(fingerprint string) (CachedRewrite, bool)
	Set(fingerprint string, rw CachedRewrite)
	// PruneOlderThan drops entries saved before now-age and returns how many
	// were removed.
	PruneOlderThan(age time.Duration) int
}

// MemoryCache is the in-process CacheStore. Safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]CachedRewrite
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string]CachedRewrite{}}
}

func (c *MemoryCache) Get(fingerprint string) (CachedRewrite, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rw, ok := c.entries[fingerprint]
	return rw, ok
}

func (c *MemoryCache) Set(fingerprint string, rw CachedRewrite) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fingerprint] = rw
}

func (c *MemoryCache) PruneOlderThan(age time.Duration) int {
	cutoff := time.Now().Add(-age)
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for k, v := range c.entries {
		if v.SavedAt.Before(cutoff) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len reports the current entry count.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
