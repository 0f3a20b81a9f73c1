package repository

import (
	"context"

	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

// CategoryRepository puerto hacia la colección remota de categorías de contacto.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Category, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}
