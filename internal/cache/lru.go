// Package cache provides a small mutex-guarded LRU used to memoize
// derived views keyed by collection revision.
package cache

import (
	"container/list"
	"sync"
)

type entry[T any] struct {
	key  string
	data T
}

// LRU is a fixed-capacity least-recently-used cache.
type LRU[T any] struct {
	mu    sync.Mutex
	cap   int
	items map[string]*list.Element
	order *list.List
}

// NewLRU creates a cache holding at most cap entries.
func NewLRU[T any](cap int) *LRU[T] {
	if cap < 1 {
		cap = 1
	}
	return &LRU[T]{
		cap:   cap,
		items: make(map[string]*list.Element),
		order: list.New(),
	}
}

// Get retrieves a value and marks it most recently used.
func (c *LRU[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	elem, ok := c.items[key]
	if !ok {
		return zero, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*entry[T]).data, true
}

// Set stores a value, evicting the least recently used entry when full.
func (c *LRU[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[T]).data = data
		c.order.MoveToFront(elem)
		return
	}

	c.items[key] = c.order.PushFront(&entry[T]{key: key, data: data})
	if c.order.Len() > c.cap {
		oldest := c.order.Back()
		if oldest != nil {
			delete(c.items, oldest.Value.(*entry[T]).key)
			c.order.Remove(oldest)
		}
	}
}

// Len returns the number of cached entries.
func (c *LRU[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
