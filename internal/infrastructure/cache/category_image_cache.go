package cache

import (
	"sync"
	"time"
)

// DefaultCategoryImageTTL is how long a resolved category image is served
// without consulting the record store again
const DefaultCategoryImageTTL = 5 * time.Minute

// imageEntry wraps a cached image URL with expiration time
type imageEntry struct {
	image     string
	expiresAt time.Time
}

// CategoryImageCache is a TTL map of category name to representative image
// URL. Empty images are valid entries; a category without imaged products is
// remembered the same way as one with them.
type CategoryImageCache struct {
	mu      sync.RWMutex
	entries map[string]imageEntry
	ttl     time.Duration
	now     func() time.Time
}

// CategoryImageCacheOption is a functional option for configuring the cache
type CategoryImageCacheOption func(*CategoryImageCache)

// WithImageTTL sets the entry time-to-live
func WithImageTTL(ttl time.Duration) CategoryImageCacheOption {
	return func(c *CategoryImageCache) {
		c.ttl = ttl
	}
}

// WithClock sets the time source, used by tests
func WithClock(now func() time.Time) CategoryImageCacheOption {
	return func(c *CategoryImageCache) {
		c.now = now
	}
}

// NewCategoryImageCache creates a new category image cache
func NewCategoryImageCache(opts ...CategoryImageCacheOption) *CategoryImageCache {
	cache := &CategoryImageCache{
		entries: make(map[string]imageEntry),
		ttl:     DefaultCategoryImageTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

// Get returns the cached image for a category and whether a live entry exists
func (c *CategoryImageCache) Get(category string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[category]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		return "", false
	}
	return e.image, true
}

// Set stores the image for a category, resetting its TTL
func (c *CategoryImageCache) Set(category, image string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[category] = imageEntry{
		image:     image,
		expiresAt: c.now().Add(c.ttl),
	}
}
