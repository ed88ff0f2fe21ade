package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/wonny/pairlens/backend/pkg/logger"
)

// Observer receives cache hit/miss/eviction events (metrics)
type Observer interface {
	CacheHit(cache string)
	CacheMiss(cache string)
	CacheEviction(cache, reason string)
}

type entry[T any] struct {
	key        string
	data       T
	insertedAt time.Time
	expiresAt  time.Time
}

// TTLCache is a string-keyed TTL cache with a fixed capacity
// ⭐ SSOT: 만료는 읽기 시점에만 확인 (백그라운드 정리 없음)
// 용량 초과 시 삽입 순서상 가장 오래된 항목을 제거 (LRU 아님, FIFO)
type TTLCache[T any] struct {
	mu         sync.Mutex
	name       string
	ttl        time.Duration
	maxEntries int
	items      map[string]*list.Element
	order      *list.List // front = oldest insertion
	now        func() time.Time
	observer   Observer
	logger     *logger.Logger
}

// Option configures a TTLCache
type Option func(*options)

type options struct {
	now      func() time.Time
	observer Observer
	logger   *logger.Logger
}

// WithClock injects a clock (tests)
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithObserver attaches a metrics observer
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithLogger attaches a logger for eviction debug logs
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.logger = log }
}

// NewTTLCache creates a new cache
func NewTTLCache[T any](name string, ttl time.Duration, maxEntries int, opts ...Option) *TTLCache[T] {
	o := options{now: time.Now, logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if maxEntries < 1 {
		maxEntries = 1
	}

	return &TTLCache[T]{
		name:       name,
		ttl:        ttl,
		maxEntries: maxEntries,
		items:      make(map[string]*list.Element, maxEntries),
		order:      list.New(),
		now:        o.now,
		observer:   o.observer,
		logger:     o.logger,
	}
}

// Get returns the value if present and not expired.
// An expired entry is removed on this read.
func (c *TTLCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	elem, ok := c.items[key]
	if !ok {
		c.miss()
		return zero, false
	}

	e := elem.Value.(*entry[T])
	if c.now().After(e.expiresAt) {
		c.removeElement(elem, "expired")
		c.miss()
		return zero, false
	}

	if c.observer != nil {
		c.observer.CacheHit(c.name)
	}
	return e.data, true
}

// Set stores value with expiresAt = now + ttl.
// Overwriting an existing key refreshes it in place without eviction.
func (c *TTLCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry[T])
		e.data = value
		e.insertedAt = now
		e.expiresAt = now.Add(c.ttl)
		return
	}

	for c.order.Len() >= c.maxEntries {
		c.removeElement(c.order.Front(), "capacity")
	}

	elem := c.order.PushBack(&entry[T]{
		key:        key,
		data:       value,
		insertedAt: now,
		expiresAt:  now.Add(c.ttl),
	})
	c.items[key] = elem
}

// Delete removes key if present
func (c *TTLCache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.Remove(elem)
		delete(c.items, key)
	}
}

// Clear removes all entries
func (c *TTLCache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element, c.maxEntries)
	c.order.Init()
}

// Len returns the number of stored entries (expired entries not yet read included)
func (c *TTLCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Name returns the cache name
func (c *TTLCache[T]) Name() string {
	return c.name
}

func (c *TTLCache[T]) removeElement(elem *list.Element, reason string) {
	e := elem.Value.(*entry[T])
	c.order.Remove(elem)
	delete(c.items, e.key)

	c.logger.WithFields(map[string]interface{}{
		"cache":  c.name,
		"key":    e.key,
		"reason": reason,
	}).Debug("Evicted cache entry")

	if c.observer != nil {
		c.observer.CacheEviction(c.name, reason)
	}
}

func (c *TTLCache[T]) miss() {
	if c.observer != nil {
		c.observer.CacheMiss(c.name)
	}
}
