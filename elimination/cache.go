package elimination

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// resultCache memoizes one Result per roster index. Entries are write-once;
// concurrent first queries for the same team share a single computation.
type resultCache struct {
	mu      sync.RWMutex
	results map[int]Result
	group   singleflight.Group
}

func newResultCache(size int) *resultCache {
	return &resultCache{results: make(map[int]Result, size)}
}

func (c *resultCache) get(i int) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.results[i]

	return r, ok
}

// set stores r for i unless a result is already present; the first write wins.
func (c *resultCache) set(i int, r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.results[i]; !ok {
		c.results[i] = r
	}
}

// load returns the cached result for i, or runs compute once across all
// concurrent callers and caches its result. hit is false only for the caller
// whose compute ran; callers that waited on it or found the entry report a hit.
// Errors are returned to every waiting caller and never cached.
func (c *resultCache) load(i int, compute func() (Result, error)) (r Result, hit bool, err error) {
	if r, ok := c.get(i); ok {
		return r, true, nil
	}

	// Do runs the function on the calling goroutine, so ran is only ever
	// touched by this caller.
	ran := false
	v, err, _ := c.group.Do(strconv.Itoa(i), func() (any, error) {
		if r, ok := c.get(i); ok {
			return r, nil
		}
		ran = true
		r, err := compute()
		if err != nil {
			return nil, err
		}
		c.set(i, r)

		return r, nil
	})
	if err != nil {
		return Result{}, false, err
	}

	return v.(Result), !ran, nil
}

// len returns the number of cached results.
func (c *resultCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.results)
}
