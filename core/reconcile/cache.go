package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// BuildFunc creates a fresh run.
type BuildFunc func(ctx context.Context) *Run

// SnapshotCache reuses a Run for a TTL so that a burst of API requests
// shares one pair of catalog fetches. A zero TTL disables reuse, but
// concurrent callers still share a single in-flight build.
type SnapshotCache struct {
	mu    sync.RWMutex
	run   *Run
	built time.Time
	ttl   time.Duration
	build BuildFunc
	now   func() time.Time
	sf    singleflight.Group
}

// NewSnapshotCache creates a cache around build.
func NewSnapshotCache(ttl time.Duration, build BuildFunc) *SnapshotCache {
	return &SnapshotCache{ttl: ttl, build: build, now: time.Now}
}

// isFresh must be called with mu held.
func (c *SnapshotCache) isFresh() bool {
	if c.run == nil || c.ttl <= 0 {
		return false
	}
	return c.now().Sub(c.built) <= c.ttl
}

// Get returns the cached run, or builds a new one if it doesn't exist or has expired.
func (c *SnapshotCache) Get(ctx context.Context) *Run {
	// Fast path
	c.mu.RLock()
	if c.isFresh() {
		run := c.run
		c.mu.RUnlock()
		return run
	}
	c.mu.RUnlock()

	result, _, _ := c.sf.Do("run", func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		if c.isFresh() {
			run := c.run
			c.mu.RUnlock()
			return run, nil
		}
		c.mu.RUnlock()

		// A cancelled caller must not leave an empty snapshot behind
		run := c.build(context.WithoutCancel(ctx))

		c.mu.Lock()
		c.run = run
		c.built = c.now()
		c.mu.Unlock()

		return run, nil
	})

	return result.(*Run)
}

// Invalidate drops the cached run so the next Get rebuilds it.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.run = nil
	c.mu.Unlock()
}
