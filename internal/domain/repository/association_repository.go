package repository

import (
	"context"

	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

// AssociationRepository puerto hacia la colección remota de contactos (asociaciones).
// El filtrado por entity_id y person_id se hace del lado del servidor.
type AssociationRepository interface {
	Create(ctx context.Context, assoc *entity.Association) error
	GetByID(ctx context.Context, id int64) (*entity.Association, error)
	ListByEntity(ctx context.Context, entityID string) ([]*entity.Association, error)
	ListByPerson(ctx context.Context, personID int64) ([]*entity.Association, error)
	Update(ctx context.Context, assoc *entity.Association) error
	Delete(ctx context.Context, id int64) error
}
