package translation

import (
	"container/list"
	"context"
	"fmt"
	"sync"
)

const (
	// DefaultCacheSize bounds the in-memory translation cache.
	DefaultCacheSize = 1000
	// keyPrefixLen truncates the text portion of a cache key so long
	// messages cannot blow up key size.
	keyPrefixLen = 100
)

// CacheStats is a snapshot of cache usage.
type CacheStats struct {
	Size    int   `json:"size"`
	MaxSize int   `json:"maxSize"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// Cache is an insertion-order-bounded translation cache: when full, the entry
// inserted earliest is evicted. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = oldest
	max     int
	hits    int64
	misses  int64
}

type cacheEntry struct {
	key   string
	value string
}

// NewCache creates a cache bounded to max entries (DefaultCacheSize if <= 0).
func NewCache(max int) *Cache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &Cache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		max:     max,
	}
}

// Key builds the canonical cache key for a translation request.
func Key(text, sourceLang, targetLang string) string {
	if len(text) > keyPrefixLen {
		text = text[:keyPrefixLen]
	}
	return fmt.Sprintf("%s:%s:%s", sourceLang, targetLang, text)
}

// Get returns the cached translation for the key, if present.
func (c *Cache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.misses++
		return "", false
	}
	c.hits++
	return el.Value.(*cacheEntry).value, true
}

// Put stores a translation, evicting the oldest entry when the cache is full.
func (c *Cache) Put(_ context.Context, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).value = value
		return
	}

	if c.order.Len() >= c.max {
		oldest := c.order.Front()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	c.entries[key] = c.order.PushBack(&cacheEntry{key: key, value: value})
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns a usage snapshot.
func (c *Cache) Stats(_ context.Context) CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Size:    c.order.Len(),
		MaxSize: c.max,
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// Reset clears all entries and counters.
func (c *Cache) Reset(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.order.Init()
	c.hits = 0
	c.misses = 0
}
