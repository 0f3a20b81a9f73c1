package contacts

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/contactos-api/internal/domain"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
	"github.com/jhoicas/contactos-api/internal/domain/repository"
)

// CategoryInput datos editables de una categoría.
type CategoryInput struct {
	Domain      entity.Domain
	Subtype     string
	Name        string
	Description string
	Inactive    bool
}

func (in *CategoryInput) normalize() error {
	in.Subtype = strings.TrimSpace(in.Subtype)
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if !in.Domain.Valid() {
		return domain.Validationf("dominio desconocido: %q", in.Domain)
	}
	if in.Subtype == "" || in.Name == "" {
		return domain.Validationf("subtype y name son requeridos")
	}
	return nil
}

// CategoryService administración de categorías de contacto.
// Toda mutación invalida la tabla cacheada del resolver.
type CategoryService struct {
	repo     repository.CategoryRepository
	resolver *CategoryResolver
	log      zerolog.Logger
}

// NewCategoryService construye el servicio.
func NewCategoryService(repo repository.CategoryRepository, resolver *CategoryResolver, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, resolver: resolver, log: log}
}

// List categorías de un dominio.
func (s *CategoryService) List(ctx context.Context, d entity.Domain) ([]entity.Category, error) {
	return s.resolver.ListByDomain(ctx, d)
}

// Get una categoría por ID.
func (s *CategoryService) Get(ctx context.Context, id int64) (*entity.Category, error) {
	return s.resolver.ResolveOne(ctx, id)
}

// Create alta de categoría (nunca SystemOwned desde esta capa).
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*entity.Category, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	c := &entity.Category{
		Domain:      in.Domain,
		Subtype:     in.Subtype,
		Name:        in.Name,
		Description: in.Description,
		Inactive:    in.Inactive,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("crear categoría: %w", err)
	}
	s.resolver.Invalidate(ctx)
	s.log.Info().Int64("category_id", c.ID).Str("domain", string(c.Domain)).Msg("categoría creada")
	return c, nil
}

// Update modifica la categoría. En las del sistema no se puede cambiar dominio ni subtype.
func (s *CategoryService) Update(ctx context.Context, id int64, in CategoryInput) (*entity.Category, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("categoría %d: %w", id, err)
	}
	if existing.SystemOwned && (existing.Domain != in.Domain || existing.Subtype != in.Subtype) {
		return nil, fmt.Errorf("categoría %d: %w", id, domain.ErrSystemOwned)
	}
	existing.Domain = in.Domain
	existing.Subtype = in.Subtype
	existing.Name = in.Name
	existing.Description = in.Description
	existing.Inactive = in.Inactive
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("actualizar categoría %d: %w", id, err)
	}
	s.resolver.Invalidate(ctx)
	return existing, nil
}

// Delete borra la categoría salvo que sea del sistema. Los contactos que la usen
// quedan con referencia colgante y dejan de aparecer en el directorio.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("categoría %d: %w", id, err)
	}
	if existing.SystemOwned {
		return fmt.Errorf("categoría %d: %w", id, domain.ErrSystemOwned)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("borrar categoría %d: %w", id, err)
	}
	s.resolver.Invalidate(ctx)
	s.log.Info().Int64("category_id", id).Msg("categoría borrada")
	return nil
}
