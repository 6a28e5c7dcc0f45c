package hashing

// entryKey identifies a subtree: a position and the depth explored below it.
type entryKey struct {
	hash  uint64
	depth int
}

// Cache remembers subtree node counts by position key and depth.
type Cache struct {
	// entries stores the counts
	entries map[entryKey]uint64
	// maxCapacity limits the number of entries (0 = unlimited)
	maxCapacity int
	// hits and misses count lookups
	hits   int
	misses int
}

// NewCache creates a new cache.
// maxCapacity of 0 means unlimited capacity.
func NewCache(maxCapacity int) *Cache {
	return &Cache{
		entries:     make(map[entryKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for the position at depth.
func (c *Cache) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := c.entries[entryKey{hash, depth}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return nodes, ok
}

// Store records a count. Once the cache is full new entries are dropped.
func (c *Cache) Store(hash uint64, depth int, nodes uint64) {
	key := entryKey{hash, depth}
	if _, ok := c.entries[key]; !ok && c.IsFull() {
		return
	}
	c.entries[key] = nodes
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Hits returns the number of successful lookups.
func (c *Cache) Hits() int {
	return c.hits
}

// Misses returns the number of failed lookups.
func (c *Cache) Misses() int {
	return c.misses
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *Cache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}
