package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/contactos-api/internal/application/contacts"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

var _ contacts.CategoryCache = (*MemoryCategoryCache)(nil)

// MemoryCategoryCache tabla de categorías en memoria del proceso con TTL.
// Sirve para una sola instancia; con varias réplicas usar RedisCategoryCache.
type MemoryCategoryCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	table     []entity.Category
	expiresAt time.Time
	now       func() time.Time
}

// NewMemoryCategoryCache ttl <= 0 significa sin vencimiento (solo invalidación explícita).
func NewMemoryCategoryCache(ttl time.Duration) *MemoryCategoryCache {
	return &MemoryCategoryCache{ttl: ttl, now: time.Now}
}

func (c *MemoryCategoryCache) Load(_ context.Context) ([]entity.Category, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.table == nil {
		return nil, false, nil
	}
	if c.ttl > 0 && c.now().After(c.expiresAt) {
		return nil, false, nil
	}
	out := make([]entity.Category, len(c.table))
	copy(out, c.table)
	return out, true, nil
}

func (c *MemoryCategoryCache) Store(_ context.Context, categories []entity.Category) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table = make([]entity.Category, len(categories))
	copy(c.table, categories)
	c.expiresAt = c.now().Add(c.ttl)
	return nil
}

func (c *MemoryCategoryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table = nil
	return nil
}
