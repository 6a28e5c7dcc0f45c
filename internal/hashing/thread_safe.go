package hashing

import (
	"sync"
)

// ThreadSafeCache wraps Cache with mutex protection for concurrent access.
type ThreadSafeCache struct {
	cache *Cache
	mu    sync.Mutex
}

// NewThreadSafeCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeCache(maxCapacity int) *ThreadSafeCache {
	return &ThreadSafeCache{
		cache: NewCache(maxCapacity),
	}
}

// Lookup returns the stored count for the position at depth.
// It takes the write lock because lookups update the hit counters.
func (c *ThreadSafeCache) Lookup(hash uint64, depth int) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(hash, depth)
}

// Store records a count.
func (c *ThreadSafeCache) Store(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Store(hash, depth, nodes)
}

// Len returns the number of stored entries.
func (c *ThreadSafeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Hits returns the number of successful lookups.
func (c *ThreadSafeCache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Hits()
}

// Misses returns the number of failed lookups.
func (c *ThreadSafeCache) Misses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Misses()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafeCache) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.IsFull()
}
