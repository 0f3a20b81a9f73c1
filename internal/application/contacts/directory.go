package contacts

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/jhoicas/contactos-api/internal/domain"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
	"github.com/jhoicas/contactos-api/internal/domain/repository"
)

// DirectoryAggregator arma las filas de contactos de una entidad uniendo
// contactos, personas y categorías. Un único flujo para clientes, sucursales y proveedores.
type DirectoryAggregator struct {
	assocs     repository.AssociationRepository
	persons    repository.PersonRepository
	categories *CategoryResolver
	log        zerolog.Logger
}

// NewDirectoryAggregator construye el agregador.
func NewDirectoryAggregator(
	assocs repository.AssociationRepository,
	persons repository.PersonRepository,
	categories *CategoryResolver,
	log zerolog.Logger,
) *DirectoryAggregator {
	return &DirectoryAggregator{assocs: assocs, persons: persons, categories: categories, log: log}
}

// ListEntityContacts devuelve las filas de la entidad ordenadas por ID de contacto.
// Sin contactos no se consultan personas ni categorías. Los contactos con categoría
// inexistente o de otro dominio se omiten. Los fallos de transporte se devuelven.
func (a *DirectoryAggregator) ListEntityContacts(ctx context.Context, ref entity.EntityRef) ([]entity.ContactRow, error) {
	if ref.IsZero() {
		return nil, domain.Validationf("referencia de entidad vacía")
	}
	assocs, err := a.assocs.ListByEntity(ctx, ref.Key())
	if err != nil {
		return nil, fmt.Errorf("contactos de %s: %w", ref, err)
	}
	if len(assocs) == 0 {
		return []entity.ContactRow{}, nil
	}

	personIDs := make([]int64, 0, len(assocs))
	typeIDs := make([]int64, 0, len(assocs))
	for _, as := range assocs {
		personIDs = append(personIDs, as.PersonID)
		typeIDs = append(typeIDs, as.Type)
	}

	persons, err := a.persons.ListByIDs(ctx, uniqueIDs(personIDs))
	if err != nil {
		return nil, fmt.Errorf("personas de %s: %w", ref, err)
	}
	byID := make(map[int64]*entity.Person, len(persons))
	for _, p := range persons {
		byID[p.ID] = p
	}

	categories, err := a.categories.ResolveMany(ctx, typeIDs)
	if err != nil {
		return nil, fmt.Errorf("categorías de %s: %w", ref, err)
	}
	descriptions := make(map[int64]string, len(categories))
	for id, c := range categories {
		if c.Domain != ref.Domain() {
			continue
		}
		descriptions[id] = c.Label()
	}

	rows := make([]entity.ContactRow, 0, len(assocs))
	for _, as := range sortAssociations(assocs) {
		if _, ok := descriptions[as.Type]; !ok {
			a.log.Debug().
				Err(domain.ErrDanglingReference).
				Int64("contact_id", as.ID).
				Int64("category_id", as.Type).
				Str("entity_id", ref.Key()).
				Str("domain", string(ref.Domain())).
				Msg("contacto omitido del directorio")
			continue
		}
		rows = append(rows, buildRow(as, byID[as.PersonID], descriptions))
	}
	return rows, nil
}

// ListEntityContactsOrEmpty aplica explícitamente la política de lectura tolerante:
// ante un fallo devuelve una lista vacía y degraded=true.
func (a *DirectoryAggregator) ListEntityContactsOrEmpty(ctx context.Context, ref entity.EntityRef) (rows []entity.ContactRow, degraded bool) {
	rows, err := a.ListEntityContacts(ctx, ref)
	if err != nil {
		a.log.Error().Err(err).Str("entity", ref.String()).Msg("directorio no disponible, se devuelve vacío")
		return []entity.ContactRow{}, true
	}
	return rows, false
}

// ListPersonContacts contactos de una persona en todos los dominios.
func (a *DirectoryAggregator) ListPersonContacts(ctx context.Context, personID int64) ([]*entity.Association, error) {
	if _, err := a.persons.GetByID(ctx, personID); err != nil {
		return nil, fmt.Errorf("persona %d: %w", personID, err)
	}
	list, err := a.assocs.ListByPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("contactos de la persona %d: %w", personID, err)
	}
	return sortAssociations(list), nil
}

func sortAssociations(list []*entity.Association) []*entity.Association {
	out := make([]*entity.Association, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
