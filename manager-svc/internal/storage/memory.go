package storage

import (
	"context"
	"sync"

	"foodcart/manager-svc/internal/domain"
)

// MemoryCoordinateCache keeps entries for the lifetime of the process.
type MemoryCoordinateCache struct {
	mu      sync.RWMutex
	entries map[string]domain.Coordinates
}

func NewMemoryCoordinateCache() *MemoryCoordinateCache {
	return &MemoryCoordinateCache{entries: make(map[string]domain.Coordinates)}
}

func (c *MemoryCoordinateCache) Get(_ context.Context, key string) (domain.Coordinates, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	coords, ok := c.entries[key]
	return coords, ok, nil
}

func (c *MemoryCoordinateCache) Put(_ context.Context, key string, coords domain.Coordinates) error {
	c.mu.Lock()
	c.entries[key] = coords
	c.mu.Unlock()
	return nil
}

func (c *MemoryCoordinateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
