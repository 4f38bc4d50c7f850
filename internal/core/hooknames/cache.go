package hooknames

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of distinct sources Cached remembers.
const DefaultCacheSize = 1024

type cacheKey struct {
	source string
	count  int
}

// Cached memoizes another Resolver. Unit sources rarely change between
// builds, so most lookups after the first build are hits.
type Cached struct {
	next  Resolver
	cache *lru.Cache[cacheKey, []string]
}

// NewCached wraps next in an LRU cache holding up to size entries.
// A non-positive size uses DefaultCacheSize.
func NewCached(next Resolver, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, []string](size)
	if err != nil {
		return nil, err
	}
	return &Cached{next: next, cache: cache}, nil
}

// Resolve implements Resolver. The returned slice must not be modified.
func (c *Cached) Resolve(source string, count int) []string {
	key := cacheKey{source: source, count: count}
	if names, ok := c.cache.Get(key); ok {
		return names
	}
	names := c.next.Resolve(source, count)
	c.cache.Add(key, names)
	return names
}

// Len returns the number of cached entries.
func (c *Cached) Len() int {
	return c.cache.Len()
}
