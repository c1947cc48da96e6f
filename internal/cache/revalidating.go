// Package cache provides a time-bounded, single-flight value cache.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultWindow is the revalidation window used when none is configured.
const DefaultWindow = 15 * time.Minute

// LoadFunc produces a fresh value.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Observer is notified of every Get outcome. hit is false when Get had to
// load (or join an in-flight load).
type Observer func(hit bool)

// Revalidating caches the result of a LoadFunc for a fixed window. Concurrent
// callers that miss share a single underlying load. Failed loads are not
// cached. Safe for concurrent use.
type Revalidating[T any] struct {
	window   time.Duration
	load     LoadFunc[T]
	now      func() time.Time
	observer Observer

	mu        sync.RWMutex
	value     T
	fetchedAt time.Time
	valid     bool

	group singleflight.Group
}

// Option configures a Revalidating cache.
type Option[T any] func(*Revalidating[T])

// WithClock replaces time.Now, for tests.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *Revalidating[T]) { c.now = now }
}

// WithObserver registers a hit/miss observer.
func WithObserver[T any](o Observer) Option[T] {
	return func(c *Revalidating[T]) { c.observer = o }
}

// New creates a cache that reloads through load once window has elapsed.
// A non-positive window uses DefaultWindow.
func New[T any](window time.Duration, load LoadFunc[T], opts ...Option[T]) *Revalidating[T] {
	if window <= 0 {
		window = DefaultWindow
	}
	c := &Revalidating[T]{
		window: window,
		load:   load,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value if it is younger than the window, otherwise
// loads a fresh one.
func (c *Revalidating[T]) Get(ctx context.Context) (T, error) {
	if v, ok := c.fresh(); ok {
		c.observe(true)
		return v, nil
	}
	c.observe(false)

	// The shared load must not be canceled by the first caller giving up.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan("load", func() (any, error) {
		// Double-check inside singleflight: a load may have just finished.
		if v, ok := c.fresh(); ok {
			return v, nil
		}
		v, err := c.load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.value = v
		c.fetchedAt = c.now()
		c.valid = true
		c.mu.Unlock()
		return v, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, ok := res.Val.(T)
		if !ok {
			return zero, fmt.Errorf("cache: unexpected value type %T", res.Val)
		}
		return v, nil
	}
}

// Invalidate drops the cached value so the next Get reloads.
func (c *Revalidating[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.valid = false
}

func (c *Revalidating[T]) fresh() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid || c.now().Sub(c.fetchedAt) > c.window {
		var zero T
		return zero, false
	}
	return c.value, true
}

func (c *Revalidating[T]) observe(hit bool) {
	if c.observer != nil {
		c.observer(hit)
	}
}
