package cache

import (
  "sync"
)

type Cache[Key comparable, Value any] struct {
  mu     sync.Mutex
  values map[Key]Value
}

func NewCache[K comparable, V any]() *Cache[K, V] {
  return &Cache[K, V]{
    values: make(map[K]V),
  }
}

func (c *Cache[K, V]) Set(key K, value V) {
  c.mu.Lock()
  defer c.mu.Unlock()

  c.values[key] = value
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
  c.mu.Lock()
  defer c.mu.Unlock()

  value, ok = c.values[key]

  return value, ok
}

// GetOrSet возвращает сохраненное значение или сохраняет новое из init.
func (c *Cache[K, V]) GetOrSet(key K, init func() V) V {
  c.mu.Lock()
  defer c.mu.Unlock()

  if value, ok := c.values[key]; ok {
    return value
  }

  value := init()
  c.values[key] = value

  return value
}

// Swap сохраняет значение и возвращает предыдущее.
func (c *Cache[K, V]) Swap(key K, value V) (prev V, ok bool) {
  c.mu.Lock()
  defer c.mu.Unlock()

  prev, ok = c.values[key]
  c.values[key] = value

  return prev, ok
}

func (c *Cache[K, V]) Delete(key K) (value V, ok bool) {
  c.mu.Lock()
  defer c.mu.Unlock()

  value, ok = c.values[key]
  delete(c.values, key)

  return value, ok
}

// CompareAndDelete удаляет значение, только если match вернул true.
func (c *Cache[K, V]) CompareAndDelete(key K, match func(V) bool) bool {
  c.mu.Lock()
  defer c.mu.Unlock()

  value, ok := c.values[key]
  if !ok || !match(value) {
    return false
  }
  delete(c.values, key)

  return true
}

func (c *Cache[K, V]) Len() int {
  c.mu.Lock()
  defer c.mu.Unlock()

  return len(c.values)
}
