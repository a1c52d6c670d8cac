package reconcile

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func countingBuild(builds *atomic.Int32) BuildFunc {
	return func(ctx context.Context) *Run {
		builds.Add(1)
		time.Sleep(10 * time.Millisecond)
		return newTestRun(newFixture(), Options{})
	}
}

func TestSnapshotCache_ReusesWithinTTL(t *testing.T) {
	var builds atomic.Int32
	cache := NewSnapshotCache(time.Minute, countingBuild(&builds))

	first := cache.Get(context.Background())
	second := cache.Get(context.Background())

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), builds.Load())
}

func TestSnapshotCache_Expires(t *testing.T) {
	var builds atomic.Int32
	cache := NewSnapshotCache(time.Minute, countingBuild(&builds))
	now := time.Now()
	cache.now = func() time.Time { return now }

	first := cache.Get(context.Background())
	now = now.Add(2 * time.Minute)
	second := cache.Get(context.Background())

	assert.NotSame(t, first, second)
	assert.Equal(t, int32(2), builds.Load())
}

func TestSnapshotCache_ZeroTTLAlwaysRebuilds(t *testing.T) {
	var builds atomic.Int32
	cache := NewSnapshotCache(0, countingBuild(&builds))

	cache.Get(context.Background())
	cache.Get(context.Background())
	assert.Equal(t, int32(2), builds.Load())
}

func TestSnapshotCache_StampedeProtection(t *testing.T) {
	var builds atomic.Int32
	cache := NewSnapshotCache(time.Minute, countingBuild(&builds))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Get(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())
}

func TestSnapshotCache_Invalidate(t *testing.T) {
	var builds atomic.Int32
	cache := NewSnapshotCache(time.Minute, countingBuild(&builds))

	cache.Get(context.Background())
	cache.Invalidate()
	cache.Get(context.Background())
	assert.Equal(t, int32(2), builds.Load())
}

func TestSnapshotCache_CancelledCallerStillBuilds(t *testing.T) {
	cache := NewSnapshotCache(time.Minute, func(ctx context.Context) *Run {
		assert.NoError(t, ctx.Err())
		return newTestRun(newFixture(), Options{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NotNil(t, cache.Get(ctx))
}
