package pricing

import (
	"sync"

	"github.com/openhaus/movein-engine/catalog"
)

// =============================================================================
// BREAKDOWN CACHE - Advisory memoization
// =============================================================================

// CacheKey is the full input tuple of a breakdown. Two computations
// with equal keys are guaranteed to produce equal breakdowns, so the
// cache is correctness-preserving by construction.
type CacheKey struct {
	UnitID  catalog.UnitID
	Rent    int64
	Parking bool
	Storage bool
	Date    string // ISO move-in date
}

// Cache memoizes breakdowns per input tuple. Safe for concurrent use.
// A nil *Cache is valid and caches nothing.
type Cache struct {
	mu      sync.RWMutex
	entries map[CacheKey]Breakdown
}

func NewCache() *Cache {
	return &Cache{entries: make(map[CacheKey]Breakdown)}
}

func (c *Cache) Get(key CacheKey) (Breakdown, bool) {
	if c == nil {
		return Breakdown{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	bd, ok := c.entries[key]
	return bd, ok
}

func (c *Cache) Put(key CacheKey, bd Breakdown) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = bd
}

// Invalidate drops one entry. Call when any component of the key's
// input changes out from under a stored breakdown.
func (c *Cache) Invalidate(key CacheKey) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear drops everything, e.g. after a policy change.
func (c *Cache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[CacheKey]Breakdown)
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
