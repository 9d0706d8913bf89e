package repository

import (
	"context"
	"learnhub_backend/internal/kvstore"
	"sync"
	"time"
)

// Record is any entity persisted in a collection document.
type Record interface {
	GetID() int64
	SetID(int64)
}

// Collection is a flat JSON-array "table" stored whole under one key.
// Every mutation is read-whole, modify in memory, write-whole; the mutex
// only guards ID generation, matching the single-writer store model.
type Collection[T Record] struct {
	store kvstore.Store
	key   string

	mu     sync.Mutex
	lastID int64
	now    func() time.Time
}

func NewCollection[T Record](store kvstore.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key, now: time.Now}
}

// SetNowFunc swaps the clock used for ID generation. Test hook.
func (c *Collection[T]) SetNowFunc(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// NextID returns a unix-millisecond ID, bumped when two inserts land in
// the same millisecond so IDs stay unique and increasing.
func (c *Collection[T]) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}

// All returns the full collection, empty when the document is missing or
// corrupt.
func (c *Collection[T]) All(ctx context.Context) []T {
	items, ok := ReadDoc[[]T](ctx, c.store, c.key)
	if !ok || items == nil {
		return []T{}
	}
	return items
}

func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	return WriteDoc(ctx, c.store, c.key, items)
}

// EnsureExists writes an empty array when the document is absent.
func (c *Collection[T]) EnsureExists(ctx context.Context) error {
	if _, ok, err := c.store.Get(ctx, c.key); err == nil && ok {
		return nil
	}
	return c.ReplaceAll(ctx, []T{})
}

// Append stores item at the end of the collection, assigning a fresh ID
// when it has none, and returns the stored item.
func (c *Collection[T]) Append(ctx context.Context, item T) (T, error) {
	items := c.All(ctx)
	if item.GetID() == 0 {
		item.SetID(c.NextID())
	}
	items = append(items, item)
	if err := c.ReplaceAll(ctx, items); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// Upsert replaces the record matching item's ID, or appends with a fresh
// ID when there is no match or no ID.
func (c *Collection[T]) Upsert(ctx context.Context, item T) (T, error) {
	if item.GetID() != 0 {
		items := c.All(ctx)
		for i := range items {
			if items[i].GetID() == item.GetID() {
				items[i] = item
				if err := c.ReplaceAll(ctx, items); err != nil {
					var zero T
					return zero, err
				}
				return item, nil
			}
		}
	}
	return c.Append(ctx, item)
}

func (c *Collection[T]) Find(ctx context.Context, pred func(T) bool) (T, bool) {
	for _, item := range c.All(ctx) {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Filter(ctx context.Context, pred func(T) bool) []T {
	out := []T{}
	for _, item := range c.All(ctx) {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}
