package contacts

import (
	"context"

	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

// CategoryCache tabla de categorías cacheada localmente o compartida (Redis).
// Load devuelve ok=false si no hay tabla vigente.
type CategoryCache interface {
	Load(ctx context.Context) (categories []entity.Category, ok bool, err error)
	Store(ctx context.Context, categories []entity.Category) error
	Invalidate(ctx context.Context) error
}

type nopCache struct{}

func (nopCache) Load(context.Context) ([]entity.Category, bool, error) { return nil, false, nil }
func (nopCache) Store(context.Context, []entity.Category) error        { return nil }
func (nopCache) Invalidate(context.Context) error                      { return nil }
