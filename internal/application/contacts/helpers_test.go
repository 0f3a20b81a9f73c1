package contacts_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contactos-api/internal/application/contacts"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
	"github.com/jhoicas/contactos-api/internal/domain/repository"
	"github.com/jhoicas/contactos-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: envuelven el almacén en memoria para contar llamadas e
// inyectar fallos en pasos concretos.
// ──────────────────────────────────────────────────────────────────────────────

type spyPersons struct {
	repository.PersonRepository
	listCalls   int
	updateCalls int
	deleteErr   error
}

func (s *spyPersons) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Person, error) {
	s.listCalls++
	return s.PersonRepository.ListByIDs(ctx, ids)
}

func (s *spyPersons) Update(ctx context.Context, p *entity.Person) error {
	s.updateCalls++
	return s.PersonRepository.Update(ctx, p)
}

func (s *spyPersons) Delete(ctx context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	return s.PersonRepository.Delete(ctx, id)
}

type spyAssociations struct {
	repository.AssociationRepository
	createErr       error
	listEntityErr   error
	listPersonErr   error
	updateCalls     int
	deletedContacts []int64

	// deleteAppliedErr se devuelve después de aplicar el borrado (respuesta perdida).
	deleteAppliedErr error
}

func (s *spyAssociations) Create(ctx context.Context, a *entity.Association) error {
	if s.createErr != nil {
		return s.createErr
	}
	return s.AssociationRepository.Create(ctx, a)
}

func (s *spyAssociations) ListByEntity(ctx context.Context, entityID string) ([]*entity.Association, error) {
	if s.listEntityErr != nil {
		return nil, s.listEntityErr
	}
	return s.AssociationRepository.ListByEntity(ctx, entityID)
}

func (s *spyAssociations) ListByPerson(ctx context.Context, personID int64) ([]*entity.Association, error) {
	if s.listPersonErr != nil {
		return nil, s.listPersonErr
	}
	return s.AssociationRepository.ListByPerson(ctx, personID)
}

func (s *spyAssociations) Update(ctx context.Context, a *entity.Association) error {
	s.updateCalls++
	return s.AssociationRepository.Update(ctx, a)
}

func (s *spyAssociations) Delete(ctx context.Context, id int64) error {
	s.deletedContacts = append(s.deletedContacts, id)
	if err := s.AssociationRepository.Delete(ctx, id); err != nil {
		return err
	}
	return s.deleteAppliedErr
}

type spyCategories struct {
	repository.CategoryRepository
	calls   int
	failErr error

	// afterList corre una vez, después de leer la tabla y antes de devolverla.
	afterList func()
}

func (s *spyCategories) List(ctx context.Context) ([]*entity.Category, error) {
	s.calls++
	if s.failErr != nil {
		return nil, s.failErr
	}
	list, err := s.CategoryRepository.List(ctx)
	if hook := s.afterList; hook != nil {
		s.afterList = nil
		hook()
	}
	return list, err
}

func (s *spyCategories) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Category, error) {
	s.calls++
	if s.failErr != nil {
		return nil, s.failErr
	}
	return s.CategoryRepository.ListByIDs(ctx, ids)
}

func (s *spyCategories) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	s.calls++
	if s.failErr != nil {
		return nil, s.failErr
	}
	return s.CategoryRepository.GetByID(ctx, id)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store      *memory.Store
	persons    *spyPersons
	assocs     *spyAssociations
	categories *spyCategories
	resolver   *contacts.CategoryResolver
	directory  *contacts.DirectoryAggregator
	lifecycle  *contacts.LifecycleManager
	service    *contacts.CategoryService
}

// newFixture arma los servicios sobre un almacén con las categorías base.
// cache puede ser nil.
func newFixture(t *testing.T, cache contacts.CategoryCache) *fixture {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Seed(context.Background(), memory.DefaultCategories()))

	f := &fixture{
		store:      store,
		persons:    &spyPersons{PersonRepository: store.Persons()},
		assocs:     &spyAssociations{AssociationRepository: store.Associations()},
		categories: &spyCategories{CategoryRepository: store.Categories()},
	}
	log := zerolog.Nop()
	f.resolver = contacts.NewCategoryResolver(f.categories, cache, log)
	f.directory = contacts.NewDirectoryAggregator(f.assocs, f.persons, f.resolver, log)
	f.lifecycle = contacts.NewLifecycleManager(f.persons, f.assocs, f.resolver, log)
	f.service = contacts.NewCategoryService(f.categories, f.resolver, log)
	return f
}

// addPerson inserta una persona directamente en el almacén.
func (f *fixture) addPerson(t *testing.T, p entity.Person) int64 {
	t.Helper()
	require.NoError(t, f.store.Persons().Create(context.Background(), &p))
	return p.ID
}

// link inserta un contacto directamente en el almacén.
func (f *fixture) link(t *testing.T, a entity.Association) int64 {
	t.Helper()
	require.NoError(t, f.store.Associations().Create(context.Background(), &a))
	return a.ID
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
