package toregexp

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"go.dw1.io/toregexp/internal/wyhash"
	"go.dw1.io/toregexp/regexp"
)

// DefaultCacheSize is the number of patterns kept by a Cache created with a
// non-positive size.
const DefaultCacheSize = 512

type cacheEntry struct {
	input string
	opts  Options
	re    *regexp.Regexp
}

// Cache memoizes [ToRegexp] results in a bounded LRU. Inputs that are not
// convertible are remembered as well; compile errors are not. A Cache is safe
// for concurrent use.
type Cache struct {
	entries *lru.Cache[uint64, cacheEntry]
}

// NewCache returns a Cache holding at most size patterns.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	entries, err := lru.New[uint64, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("toregexp: cache: %w", err)
	}

	return &Cache{entries: entries}, nil
}

// ToRegexp is like the package-level ToRegexp, reusing a previously compiled
// pattern for the same input and options.
func (c *Cache) ToRegexp(input string, opts Options) (*regexp.Regexp, error) {
	key := wyhash.String(input, opts.bits())
	if e, ok := c.entries.Get(key); ok && e.input == input && e.opts == opts {
		return e.re, nil
	}

	re, err := ToRegexp(input, opts)
	if err != nil {
		return nil, err
	}

	c.entries.Add(key, cacheEntry{input: input, opts: opts, re: re})
	return re, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached pattern.
func (c *Cache) Purge() {
	c.entries.Purge()
}
