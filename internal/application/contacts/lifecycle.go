package contacts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/contactos-api/internal/domain"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
	"github.com/jhoicas/contactos-api/internal/domain/repository"
)

// LifecycleManager orquesta alta, edición y baja en cascada de contactos.
// Cada paso es una llamada independiente al backend: no hay transacción. El alta
// compensa borrando la persona si el contacto no se pudo crear.
type LifecycleManager struct {
	persons    repository.PersonRepository
	assocs     repository.AssociationRepository
	categories *CategoryResolver
	log        zerolog.Logger
}

// NewLifecycleManager construye el orquestador.
func NewLifecycleManager(
	persons repository.PersonRepository,
	assocs repository.AssociationRepository,
	categories *CategoryResolver,
	log zerolog.Logger,
) *LifecycleManager {
	return &LifecycleManager{persons: persons, assocs: assocs, categories: categories, log: log}
}

// DeleteResult resultado de la baja de un contacto.
type DeleteResult struct {
	ContactID     int64
	PersonID      int64
	PersonDeleted bool
}

// PersonDeleteResult resultado de la baja administrativa de una persona.
type PersonDeleteResult struct {
	PersonID        int64
	ContactsDeleted int
}

func (m *LifecycleManager) opLogger(op string) zerolog.Logger {
	return m.log.With().Str("op", op).Str("op_id", uuid.NewString()).Logger()
}

// CreateContact crea la persona y luego el contacto que la vincula a ref.
// Un fallo al resolver la categoría no bloquea el alta: la acción queda vacía.
func (m *LifecycleManager) CreateContact(ctx context.Context, ref entity.EntityRef, fields entity.Person, categoryID int64) (*entity.ContactRow, error) {
	if ref.IsZero() {
		return nil, domain.Validationf("referencia de entidad vacía")
	}
	if categoryID <= 0 {
		return nil, domain.Validationf("category_id es requerido")
	}
	person := fields
	person.ID = 0
	if err := normalizePerson(&person); err != nil {
		return nil, err
	}
	log := m.opLogger("create_contact")

	var (
		action      string
		description string
	)
	category, err := m.categories.ResolveOne(ctx, categoryID)
	switch {
	case err != nil:
		log.Warn().Err(err).Int64("category_id", categoryID).Msg("categoría no resuelta, se crea el contacto sin acción")
	case category.Domain != ref.Domain():
		return nil, domain.Validationf("la categoría %d pertenece a %s, no a %s", categoryID, category.Domain, ref.Domain())
	default:
		action = category.Subtype
		description = category.Label()
	}

	if err := m.persons.Create(ctx, &person); err != nil {
		return nil, fmt.Errorf("crear persona: %w", err)
	}
	log = log.With().Int64("person_id", person.ID).Logger()

	assoc := &entity.Association{
		PersonID: person.ID,
		Type:     categoryID,
		Action:   action,
		EntityID: ref.Key(),
	}
	if err := m.assocs.Create(ctx, assoc); err != nil {
		createErr := fmt.Errorf("crear contacto: %w", err)
		if derr := m.persons.Delete(ctx, person.ID); derr != nil && !errors.Is(derr, domain.ErrNotFound) {
			log.Error().Err(derr).Msg("compensación fallida: persona huérfana")
			return nil, errors.Join(createErr, fmt.Errorf("compensar persona %d: %w", person.ID, derr))
		}
		log.Info().Msg("contacto no creado, persona compensada")
		return nil, createErr
	}

	descriptions := map[int64]string{}
	if description != "" {
		descriptions[categoryID] = description
	}
	row := buildRow(assoc, &person, descriptions)
	log.Info().Int64("contact_id", assoc.ID).Str("entity", ref.String()).Msg("contacto creado")
	return &row, nil
}

// GetContact fila de un contacto para formularios de edición.
func (m *LifecycleManager) GetContact(ctx context.Context, contactID int64) (*entity.ContactRow, error) {
	assoc, err := m.assocs.GetByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("contacto %d: %w", contactID, err)
	}
	person, err := m.persons.GetByID(ctx, assoc.PersonID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("persona %d: %w", assoc.PersonID, err)
	}
	descriptions, err := m.categories.BuildDescriptionMap(ctx, []int64{assoc.Type})
	if err != nil {
		return nil, err
	}
	row := buildRow(assoc, person, descriptions)
	return &row, nil
}

// UpdateContact aplica el patch sobre la persona y, si cambia, la categoría del contacto.
// Solo se normalizan los campos que trae el patch; un patch igual a lo guardado no escribe.
// Son dos escrituras independientes; un fallo en la segunda no revierte la primera.
func (m *LifecycleManager) UpdateContact(ctx context.Context, contactID int64, patch entity.PersonPatch, newCategoryID *int64) error {
	if newCategoryID != nil && *newCategoryID <= 0 {
		return domain.Validationf("category_id inválido")
	}
	log := m.opLogger("update_contact").With().Int64("contact_id", contactID).Logger()

	assoc, err := m.assocs.GetByID(ctx, contactID)
	if err != nil {
		return fmt.Errorf("contacto %d: %w", contactID, err)
	}
	current, err := m.persons.GetByID(ctx, assoc.PersonID)
	if err != nil {
		return fmt.Errorf("persona %d: %w", assoc.PersonID, err)
	}
	merged := patch.Apply(*current)
	if merged != *current {
		clean, err := normalizePatch(patch)
		if err != nil {
			return err
		}
		merged = clean.Apply(*current)
	}

	retype := newCategoryID != nil && *newCategoryID != assoc.Type
	action := assoc.Action
	if retype {
		next, err := m.categories.ResolveOne(ctx, *newCategoryID)
		if err != nil {
			log.Warn().Err(err).Int64("category_id", *newCategoryID).Msg("categoría no resuelta, se conserva la acción anterior")
		} else {
			prev, err := m.categories.ResolveOne(ctx, assoc.Type)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				// Sin la categoría actual no hay dominio contra el cual comparar.
				return domain.Validationf("la categoría actual %d no existe, no se puede verificar el dominio de %d", assoc.Type, next.ID)
			case err != nil:
				return fmt.Errorf("resolver categoría actual %d: %w", assoc.Type, err)
			case prev.Domain != next.Domain:
				return domain.Validationf("la categoría %d pertenece a %s, no a %s", next.ID, next.Domain, prev.Domain)
			}
			action = next.Subtype
		}
	}

	if merged != *current {
		if err := m.persons.Update(ctx, &merged); err != nil {
			return fmt.Errorf("actualizar persona %d: %w", merged.ID, err)
		}
	}
	if retype {
		assoc.Type = *newCategoryID
		assoc.Action = action
		if err := m.assocs.Update(ctx, assoc); err != nil {
			return fmt.Errorf("actualizar contacto %d: %w", contactID, err)
		}
	}
	log.Info().Bool("retyped", retype).Msg("contacto actualizado")
	return nil
}

// DeleteContact borra el contacto y, si era el último de su persona, también la persona.
// El conteo de referencias se hace después de que el borrado del contacto respondió.
// Si falla el conteo o el borrado de la persona se devuelve el resultado parcial y el error.
func (m *LifecycleManager) DeleteContact(ctx context.Context, contactID int64) (*DeleteResult, error) {
	log := m.opLogger("delete_contact").With().Int64("contact_id", contactID).Logger()

	assoc, err := m.assocs.GetByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("contacto %d: %w", contactID, err)
	}
	// Un 404 aquí es un reintento de un DELETE que el backend ya aplicó.
	if err := m.assocs.Delete(ctx, contactID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("borrar contacto %d: %w", contactID, err)
	}
	result := &DeleteResult{ContactID: contactID, PersonID: assoc.PersonID}

	remaining, err := m.assocs.ListByPerson(ctx, assoc.PersonID)
	if err != nil {
		log.Error().Err(err).Int64("person_id", assoc.PersonID).Msg("no se pudo contar referencias, la persona puede quedar huérfana")
		return result, fmt.Errorf("contar contactos de la persona %d: %w", assoc.PersonID, err)
	}
	if len(remaining) > 0 {
		log.Info().Int("remaining", len(remaining)).Msg("contacto borrado, la persona conserva otros contactos")
		return result, nil
	}
	if err := m.persons.Delete(ctx, assoc.PersonID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		log.Error().Err(err).Int64("person_id", assoc.PersonID).Msg("persona huérfana tras borrar su último contacto")
		return result, fmt.Errorf("borrar persona %d: %w", assoc.PersonID, err)
	}
	result.PersonDeleted = true
	log.Info().Int64("person_id", assoc.PersonID).Msg("contacto y persona borrados")
	return result, nil
}

// DeletePerson baja administrativa: borra todos los contactos de la persona y luego la persona.
func (m *LifecycleManager) DeletePerson(ctx context.Context, personID int64) (*PersonDeleteResult, error) {
	log := m.opLogger("delete_person").With().Int64("person_id", personID).Logger()

	if _, err := m.persons.GetByID(ctx, personID); err != nil {
		return nil, fmt.Errorf("persona %d: %w", personID, err)
	}
	list, err := m.assocs.ListByPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("contactos de la persona %d: %w", personID, err)
	}
	result := &PersonDeleteResult{PersonID: personID}
	for _, a := range list {
		if err := m.assocs.Delete(ctx, a.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return result, fmt.Errorf("borrar contacto %d: %w", a.ID, err)
		}
		result.ContactsDeleted++
	}
	if err := m.persons.Delete(ctx, personID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return result, fmt.Errorf("borrar persona %d: %w", personID, err)
	}
	log.Info().Int("contacts_deleted", result.ContactsDeleted).Msg("persona borrada")
	return result, nil
}
