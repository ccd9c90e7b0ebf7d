// Package tagcache is an in-process cache whose entries are labelled with the
// tags they depend on. Invalidating a tag drops every entry carrying it.
//
// A tag with an empty ID stands for the whole type: invalidating it drops
// every entry that carries a tag of that type, whatever the ID.
package tagcache

import (
	"sync"
	"time"
)

// Tag labels a cached entry with something it depends on.
type Tag struct {
	Type string
	ID   string
}

// String returns "Type" or "Type:ID".
func (t Tag) String() string {
	if t.ID == "" {
		return t.Type
	}
	return t.Type + ":" + t.ID
}

type entry struct {
	value     any
	tags      []Tag
	expiresAt time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	byTag   map[Tag]map[string]struct{}
	byType  map[string]map[string]struct{}
	now     func() time.Time
}

type Option func(*Cache)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		byTag:   make(map[Tag]map[string]struct{}),
		byType:  make(map[string]map[string]struct{}),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the live value stored under key.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.deleteLocked(key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the given tags. A non-positive ttl never
// expires; the entry then lives until one of its tags is invalidated.
func (c *Cache) Set(key string, value any, ttl time.Duration, tags ...Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.deleteLocked(key)

	e := entry{value: value, tags: tags}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.entries[key] = e

	for _, tag := range tags {
		addIndex(c.byTag, tag, key)
		addIndex(c.byType, tag.Type, key)
	}
}

// Invalidate drops every entry carrying one of tags and returns how many
// entries were dropped.
func (c *Cache) Invalidate(tags ...Tag) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	victims := make(map[string]struct{})
	for _, tag := range tags {
		var keys map[string]struct{}
		if tag.ID == "" {
			keys = c.byType[tag.Type]
		} else {
			keys = c.byTag[tag]
		}
		for key := range keys {
			victims[key] = struct{}{}
		}
	}

	for key := range victims {
		c.deleteLocked(key)
	}
	return len(victims)
}

// Len returns the number of stored entries, expired ones included until they
// are next read.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) deleteLocked(key string) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)

	for _, tag := range e.tags {
		removeIndex(c.byTag, tag, key)
		removeIndex(c.byType, tag.Type, key)
	}
}

func addIndex[K comparable](index map[K]map[string]struct{}, k K, key string) {
	keys, ok := index[k]
	if !ok {
		keys = make(map[string]struct{})
		index[k] = keys
	}
	keys[key] = struct{}{}
}

func removeIndex[K comparable](index map[K]map[string]struct{}, k K, key string) {
	keys, ok := index[k]
	if !ok {
		return
	}
	delete(keys, key)
	if len(keys) == 0 {
		delete(index, k)
	}
}

// Load is a typed Get.
func Load[V any](c *Cache, key string) (V, bool) {
	v, ok := c.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	typed, ok := v.(V)
	return typed, ok
}
