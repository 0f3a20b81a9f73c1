package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

func sampleTable() []entity.Category {
	return []entity.Category{
		{ID: 1, Domain: entity.DomainCustomer, Subtype: "general", Name: "General", Description: "Contacto general", SystemOwned: true},
		{ID: 6, Domain: entity.DomainSupplier, Subtype: "order", Name: "Compras"},
	}
}

func TestMemoryCategoryCache_VaciaHastaStore(t *testing.T) {
	c := NewMemoryCategoryCache(time.Minute)
	ctx := context.Background()

	_, ok, err := c.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Store(ctx, sampleTable()))
	got, ok, err := c.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sampleTable(), got)
}

func TestMemoryCategoryCache_Expira(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCategoryCache(time.Minute)
	c.now = func() time.Time { return now }
	ctx := context.Background()
	require.NoError(t, c.Store(ctx, sampleTable()))

	now = now.Add(30 * time.Second)
	_, ok, _ := c.Load(ctx)
	assert.True(t, ok, "dentro del TTL")

	now = now.Add(time.Minute)
	_, ok, _ = c.Load(ctx)
	assert.False(t, ok, "vencida")
}

func TestMemoryCategoryCache_SinTTL_NoExpira(t *testing.T) {
	now := time.Now()
	c := NewMemoryCategoryCache(0)
	c.now = func() time.Time { return now }
	ctx := context.Background()
	require.NoError(t, c.Store(ctx, sampleTable()))

	now = now.Add(24 * time.Hour)
	_, ok, _ := c.Load(ctx)
	assert.True(t, ok)
}

func TestMemoryCategoryCache_Invalidate(t *testing.T) {
	c := NewMemoryCategoryCache(time.Minute)
	ctx := context.Background()
	require.NoError(t, c.Store(ctx, sampleTable()))
	require.NoError(t, c.Invalidate(ctx))

	_, ok, err := c.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

// La tabla devuelta es una copia: modificarla no altera la caché.
func TestMemoryCategoryCache_DevuelveCopia(t *testing.T) {
	c := NewMemoryCategoryCache(0)
	ctx := context.Background()
	require.NoError(t, c.Store(ctx, sampleTable()))

	got, _, _ := c.Load(ctx)
	got[0].Name = "mutada"

	again, _, _ := c.Load(ctx)
	assert.Equal(t, "General", again[0].Name)
}
