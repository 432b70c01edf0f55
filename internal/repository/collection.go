// Package repository holds the in-memory collections behind the data service.
// Each collection owns one RWMutex; writes hold it for the whole
// read-modify-write so concurrent inserts never share an id.
package repository

import (
	"context"
	"sync"

	"marketplace/internal/observability"
)

// Collection is an ordered, lock-protected set of records keyed by K.
// Records pass through the clone function on the way in and out, so callers
// never hold memory the collection owns.
type Collection[T any, K comparable] struct {
	name  string
	mu    sync.RWMutex
	items []T
	key   func(T) K
	clone func(T) T
	log   *observability.RepoLogger
}

// Option configures a Collection.
type Option[T any] func(*collectionOptions[T])

type collectionOptions[T any] struct {
	clone func(T) T
}

// WithClone sets the function used to copy records. Records without
// reference fields can rely on the default plain value copy.
func WithClone[T any](clone func(T) T) Option[T] {
	return func(o *collectionOptions[T]) {
		o.clone = clone
	}
}

// NewCollection builds a collection seeded with copies of items in their
// given order.
func NewCollection[T any, K comparable](name string, items []T, key func(T) K, opts ...Option[T]) *Collection[T, K] {
	o := collectionOptions[T]{clone: func(v T) T { return v }}
	for _, opt := range opts {
		opt(&o)
	}

	seeded := make([]T, len(items))
	for i, item := range items {
		seeded[i] = o.clone(item)
	}
	c := &Collection[T, K]{
		name:  name,
		items: seeded,
		key:   key,
		clone: o.clone,
		log:   observability.NewRepoLogger(name),
	}
	c.reportSize()
	return c
}

// Name returns the collection name.
func (c *Collection[T, K]) Name() string {
	return c.name
}

// Len returns the number of records.
func (c *Collection[T, K]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns every record in insertion order.
func (c *Collection[T, K]) All(ctx context.Context) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	c.log.LogRead(ctx, map[string]interface{}{"count": len(out)})
	return out
}

// Get returns the first record whose key equals id.
func (c *Collection[T, K]) Get(ctx context.Context, id K) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.key(item) == id {
			c.log.LogRead(ctx, map[string]interface{}{"id": id, "found": true})
			return c.clone(item), true
		}
	}
	c.log.LogRead(ctx, map[string]interface{}{"id": id, "found": false})
	var zero T
	return zero, false
}

// Filter returns the records matching pred, preserving order. The result is
// never nil.
func (c *Collection[T, K]) Filter(ctx context.Context, pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, item := range c.items {
		if pred(item) {
			out = append(out, c.clone(item))
		}
	}
	c.log.LogRead(ctx, map[string]interface{}{"count": len(out), "filtered": true})
	return out
}

// Insert appends the record produced by build. build runs under the write
// lock and receives the current records so it can derive an id from them.
func (c *Collection[T, K]) Insert(ctx context.Context, build func(existing []T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := build(c.items)
	c.items = append(c.items, c.clone(item))
	c.log.LogCreate(ctx, map[string]interface{}{"id": c.key(item)})
	c.reportSizeLocked()
	return c.clone(item)
}

// Update applies fn to the first record keyed by id and returns the result.
func (c *Collection[T, K]) Update(ctx context.Context, id K, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.key(c.items[i]) == id {
			fn(&c.items[i])
			c.items[i] = c.clone(c.items[i])
			c.log.LogUpdate(ctx, map[string]interface{}{"id": id})
			return c.clone(c.items[i]), true
		}
	}
	c.log.LogMiss(ctx, "update", map[string]interface{}{"id": id})
	var zero T
	return zero, false
}

// Delete removes the first record keyed by id.
func (c *Collection[T, K]) Delete(ctx context.Context, id K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.key(c.items[i]) == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			c.log.LogDelete(ctx, map[string]interface{}{"id": id})
			c.reportSizeLocked()
			return true
		}
	}
	c.log.LogMiss(ctx, "delete", map[string]interface{}{"id": id})
	return false
}

func (c *Collection[T, K]) reportSize() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	c.reportSizeLocked()
}

func (c *Collection[T, K]) reportSizeLocked() {
	observability.CollectionSize.WithLabelValues(c.name).Set(float64(len(c.items)))
}

// NextIntID returns max(existing ids) + 1, or 1 for an empty collection.
func NextIntID[T any](items []T, id func(T) int) int {
	next := 1
	for _, item := range items {
		if v := id(item); v >= next {
			next = v + 1
		}
	}
	return next
}
