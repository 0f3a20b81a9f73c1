package repository

import (
	"context"

	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

// PersonRepository puerto hacia la colección remota de personas.
// GetByID devuelve domain.ErrNotFound si la persona no existe.
type PersonRepository interface {
	Create(ctx context.Context, person *entity.Person) error
	GetByID(ctx context.Context, id int64) (*entity.Person, error)
	// ListByIDs trae en una sola llamada las personas pedidas; las inexistentes se omiten.
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Person, error)
	Update(ctx context.Context, person *entity.Person) error
	Delete(ctx context.Context, id int64) error
}
