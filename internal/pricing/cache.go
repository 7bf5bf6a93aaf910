package pricing

import "sync"

// Cache memoizes canonical price results per freight id. It is purely a
// recomputation shortcut: clearing it never changes the value a subsequent
// computation produces, only whether it is recomputed.
type Cache interface {
	Get(id string) (*Result, bool)
	Put(id string, res *Result)
	// Invalidate drops the given ids; with no arguments it clears every entry.
	Invalidate(ids ...string)
}

// MemoryCache is a mutex-guarded in-process Cache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*Result
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*Result)}
}

func (c *MemoryCache) Get(id string) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[id]
	return res, ok
}

func (c *MemoryCache) Put(id string, res *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = res
}

func (c *MemoryCache) Invalidate(ids ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(ids) == 0 {
		c.entries = make(map[string]*Result)
		return
	}
	for _, id := range ids {
		delete(c.entries, id)
	}
}

// Size returns the number of cached entries.
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// NoopCache stores nothing; tests use it to exercise the calculator as a
// pure function.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) Get(string) (*Result, bool) { return nil, false }
func (NoopCache) Put(string, *Result)        {}
func (NoopCache) Invalidate(...string)       {}

// Calculator memoizes Compute per freight id so display consumers can rely
// on reference equality between renders to skip re-render work.
type Calculator struct {
	cache Cache
}

func NewCalculator(cache Cache) *Calculator {
	if cache == nil {
		cache = NewNoopCache()
	}
	return &Calculator{cache: cache}
}

// Price returns the cached result for in.ID when one exists; otherwise it
// computes, stores and returns a fresh one. The identical pointer comes back
// on every call until the id is invalidated.
func (c *Calculator) Price(in Input) *Result {
	if in.ID != "" {
		if cached, ok := c.cache.Get(in.ID); ok {
			return cached
		}
	}

	res := Compute(in)
	out := &res
	if in.ID != "" {
		c.cache.Put(in.ID, out)
	}
	return out
}

// Invalidate forwards to the underlying cache: specific ids, or everything
// when called with none.
func (c *Calculator) Invalidate(ids ...string) {
	c.cache.Invalidate(ids...)
}
