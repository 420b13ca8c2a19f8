package genre

import (
	"container/list"
	"sync"
)

// BoundedCache is a fixed-capacity LRU cache keyed by string. Both reads
// and writes refresh recency; when full, the least recently touched entry
// is evicted. Safe for concurrent use.
type BoundedCache[V any] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front is most recently used
	entries  map[string]*list.Element
}

type cacheEntry[V any] struct {
	key   string
	value V
}

// NewBoundedCache creates a cache holding at most capacity entries.
func NewBoundedCache[V any](capacity int) *BoundedCache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &BoundedCache[V]{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

// Get returns the cached value for key and refreshes its recency.
func (c *BoundedCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*cacheEntry[V]).value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key, evicting the least recently used entry if
// the cache is at capacity.
func (c *BoundedCache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry[V]).value = value
		c.order.MoveToFront(elem)
		return
	}
	c.entries[key] = c.order.PushFront(&cacheEntry[V]{key: key, value: value})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry[V]).key)
	}
}

// Len returns the number of cached entries.
func (c *BoundedCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
