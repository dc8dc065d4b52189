// Package cache provides a single-slot TTL cache that fronts a slow,
// rate-limited upstream producer. It guarantees at most one in-flight refresh
// at a time and falls back to the previously cached value when a refresh
// fails, so callers see degraded data instead of an error once any fetch has
// ever succeeded.
package cache

import (
	"context"
	"sync"
	"time"

	appErrors "commonwealth/utils/errors"

	"golang.org/x/sync/singleflight"
)

// Freshness tags how the returned value was obtained.
type Freshness string

const (
	// FreshnessFresh means the value was just fetched from the producer.
	FreshnessFresh Freshness = "fresh"
	// FreshnessHit means the cached value was still within its TTL.
	FreshnessHit Freshness = "hit"
	// FreshnessStale means the producer failed and the previous value was
	// served instead.
	FreshnessStale Freshness = "stale"
)

// Result pairs a cached value with its freshness tag so callers can
// distinguish fresh, cached and degraded responses without inspecting the
// value itself.
type Result[T any] struct {
	Value     T
	Freshness Freshness
	FetchedAt time.Time
}

// Producer yields a fresh value from upstream or fails.
type Producer[T any] func(ctx context.Context) (T, error)

// SingleSlot is a cache holding exactly one value. The zero FetchedAt forces
// the first call to refresh. All access to the slot goes through
// GetOrRefresh; concurrent refreshes are coalesced into one upstream call.
type SingleSlot[T any] struct {
	mu        sync.Mutex
	group     singleflight.Group
	value     T
	fetchedAt time.Time

	component string
	now       func() time.Time
}

// NewSingleSlot creates an empty cache. The component name appears in error
// context when a refresh fails with no fallback available.
func NewSingleSlot[T any](component string) *SingleSlot[T] {
	return &SingleSlot[T]{
		component: component,
		now:       time.Now,
	}
}

// GetOrRefresh returns the cached value when it is within ttl, otherwise
// refreshes it through producer. A refresh already in flight is shared by all
// callers that find the slot stale, so the producer runs at most once per
// stale window. force bypasses the freshness check but still joins an
// in-flight refresh. On producer failure the previous value is served with
// FreshnessStale and the fetch timestamp is left untouched, so the next call
// retries; with no previous value the failure surfaces as an
// upstream-unavailable error.
func (c *SingleSlot[T]) GetOrRefresh(ctx context.Context, ttl time.Duration, force bool, producer Producer[T]) (Result[T], error) {
	c.mu.Lock()
	if !force && !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) <= ttl {
		res := Result[T]{Value: c.value, Freshness: FreshnessHit, FetchedAt: c.fetchedAt}
		c.mu.Unlock()
		return res, nil
	}
	c.mu.Unlock()

	// The fixed key collapses every concurrent refresh of this slot into a
	// single producer call; waiters get the shared result.
	v, err, _ := c.group.Do("refresh", func() (interface{}, error) {
		value, err := producer(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.value = value
		c.fetchedAt = c.now()
		c.mu.Unlock()

		return value, nil
	})

	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.fetchedAt.IsZero() {
			// Serve the previous value. FetchedAt stays as it was so the
			// staleness window is not silently extended.
			return Result[T]{Value: c.value, Freshness: FreshnessStale, FetchedAt: c.fetchedAt}, nil
		}
		return Result[T]{}, appErrors.NewUpstreamUnavailableError(
			"cache",
			c.component,
			"GetOrRefresh",
			err,
			map[string]interface{}{"has_previous_value": false},
		)
	}

	return Result[T]{Value: v.(T), Freshness: FreshnessFresh, FetchedAt: c.fetchedAtSnapshot()}, nil
}

func (c *SingleSlot[T]) fetchedAtSnapshot() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchedAt
}
