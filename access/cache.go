package access

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// ttlCache is the bounded, TTL-from-write, single-flight cache contract
// described in §4.4/§5: bounded size with approximated-LRU eviction, one
// backend call per key no matter how many concurrent callers miss at
// once, and a failed load never poisons the entry for the next caller.
//
// It is built on an expirable LRU (bounded size + per-entry TTL) and a
// singleflight.Group (call coalescing), rather than a hand-rolled
// map+mutex, matching the caching libraries present in the surrounding
// Go ecosystem.
type ttlCache[V any] struct {
	lru   *lru.LRU[string, V]
	group singleflight.Group
}

func newTTLCache[V any](size int, ttl time.Duration) *ttlCache[V] {
	return &ttlCache[V]{lru: lru.NewLRU[string, V](size, nil, ttl)}
}

// getOrLoad returns the cached value for key if present and unexpired.
// Otherwise it coalesces concurrent loads for the same key into a single
// call to load, which always runs to completion (against a background
// context) regardless of any individual caller's cancellation: a caller
// whose ctx is canceled simply stops waiting, without aborting the load
// for the callers who win the race. A failed load is never cached, so the
// next call retries against the backend.
func (c *ttlCache[V]) getOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		val, err := load(context.Background())
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, val)
		return val, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			var zero V
			return zero, res.Err
		}
		return res.Val.(V), nil
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}
