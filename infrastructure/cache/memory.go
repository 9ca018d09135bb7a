package cache

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// MemoryCache é um cache em memória com expiração preguiçosa: entradas vencidas só são
// removidas quando lidas ou limpas.
type MemoryCache[T any] struct {
	mu         sync.Mutex
	entries    map[string]entry[T]
	defaultTTL time.Duration
	now        func() time.Time
}

func NewMemory[T any](defaultTTL time.Duration) *MemoryCache[T] {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	return &MemoryCache[T]{
		entries:    make(map[string]entry[T]),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (c *MemoryCache[T]) Get(_ context.Context, key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T

	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}

	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return zero, false
	}

	return e.value, true
}

func (c *MemoryCache[T]) Set(_ context.Context, key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[T]{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

func (c *MemoryCache[T]) Clear(_ context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(keys) == 0 {
		c.entries = make(map[string]entry[T])
		return
	}

	for _, key := range keys {
		delete(c.entries, key)
	}
}

// Len conta as entradas armazenadas, inclusive as vencidas ainda não removidas
func (c *MemoryCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
