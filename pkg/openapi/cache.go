package openapi

import (
	"sync"
	"time"
)

// cacheEntry pairs a parsed document with when it was fetched.
type cacheEntry struct {
	doc       *Document
	fetchedAt time.Time
}

// documentCache keeps parsed documents for the fetch TTL. There is no
// sweeper goroutine; Get discards expired entries as it finds them.
type documentCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

func newDocumentCache(ttl time.Duration) *documentCache {
	return &documentCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cached document if present and not expired.
func (c *documentCache) Get(url string) (*Document, bool) {
	c.mu.RLock()
	entry, ok := c.entries[url]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Drop the stale entry, but only after confirming under the write
		// lock that a concurrent Set has not refreshed it since RUnlock.
		c.mu.Lock()
		if current, ok := c.entries[url]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, url)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.doc, true
}

// Set stores a document with the current timestamp.
func (c *documentCache) Set(url string, doc *Document) {
	c.mu.Lock()
	c.entries[url] = &cacheEntry{
		doc:       doc,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}
