package utils

import (
	"sync" // Mutex guarding the entry map
	"time" // Expiry timestamps
)

// Cache is a process-local key/value cache with per-entry TTL.
// The single-process model rules out an external cache server, so
// entries live in a mutex-guarded map and expire lazily on read.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// NewCache returns an empty cache
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// GetCache retrieves a live value; found is false for missing or expired keys
func (c *Cache) GetCache(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false // Key does not exist
	}
	if time.Now().After(e.expires) {
		delete(c.entries, key) // Expired; evict on the way out
		return nil, false
	}
	return e.value, true
}

// SetCache stores a value with a TTL
func (c *Cache) SetCache(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expires: time.Now().Add(ttl)}
}

// DeleteCache removes a key; no-op if absent
func (c *Cache) DeleteCache(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
