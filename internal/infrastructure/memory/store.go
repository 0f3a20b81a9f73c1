// Package memory implementa los puertos de persistencia en memoria.
// Se usa con BACKEND_DRIVER=memory (desarrollo local) y en los tests de aplicación.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/contactos-api/internal/domain"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
	"github.com/jhoicas/contactos-api/internal/domain/repository"
)

var (
	_ repository.PersonRepository      = (*PersonRepo)(nil)
	_ repository.AssociationRepository = (*AssociationRepo)(nil)
	_ repository.CategoryRepository    = (*CategoryRepo)(nil)
)

// Store estado compartido de las tres colecciones. IDs autoincrementales por colección.
type Store struct {
	mu           sync.RWMutex
	persons      map[int64]entity.Person
	associations map[int64]entity.Association
	categories   map[int64]entity.Category
	seq          map[string]int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		persons:      make(map[int64]entity.Person),
		associations: make(map[int64]entity.Association),
		categories:   make(map[int64]entity.Category),
		seq:          make(map[string]int64),
	}
}

// Persons devuelve el adaptador de personas.
func (s *Store) Persons() *PersonRepo { return &PersonRepo{s: s} }

// Associations devuelve el adaptador de contactos.
func (s *Store) Associations() *AssociationRepo { return &AssociationRepo{s: s} }

// Categories devuelve el adaptador de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// nextID debe llamarse con s.mu tomado para escritura.
func (s *Store) nextID(collection string) int64 {
	s.seq[collection]++
	return s.seq[collection]
}

// bump mantiene la secuencia por encima de un ID asignado a mano (seed).
func (s *Store) bump(collection string, id int64) {
	if id > s.seq[collection] {
		s.seq[collection] = id
	}
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
}

// ── Personas ─────────────────────────────────────────────────────────────────

// PersonRepo implementación en memoria de PersonRepository.
type PersonRepo struct{ s *Store }

// Create asigna ID si viene en cero.
func (r *PersonRepo) Create(_ context.Context, p *entity.Person) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.s.nextID("persons")
	} else {
		r.s.bump("persons", p.ID)
	}
	r.s.persons[p.ID] = *p
	return nil
}

func (r *PersonRepo) GetByID(_ context.Context, id int64) (*entity.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.persons[id]
	if !ok {
		return nil, notFound("persona", id)
	}
	return &p, nil
}

func (r *PersonRepo) ListByIDs(_ context.Context, ids []int64) ([]*entity.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Person, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.s.persons[id]; ok {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r *PersonRepo) Update(_ context.Context, p *entity.Person) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.persons[p.ID]; !ok {
		return notFound("persona", p.ID)
	}
	r.s.persons[p.ID] = *p
	return nil
}

func (r *PersonRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.persons[id]; !ok {
		return notFound("persona", id)
	}
	delete(r.s.persons, id)
	return nil
}

// ── Contactos ────────────────────────────────────────────────────────────────

// AssociationRepo implementación en memoria de AssociationRepository.
type AssociationRepo struct{ s *Store }

func (r *AssociationRepo) Create(_ context.Context, a *entity.Association) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a.ID == 0 {
		a.ID = r.s.nextID("contacts")
	} else {
		r.s.bump("contacts", a.ID)
	}
	r.s.associations[a.ID] = *a
	return nil
}

func (r *AssociationRepo) GetByID(_ context.Context, id int64) (*entity.Association, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.associations[id]
	if !ok {
		return nil, notFound("contacto", id)
	}
	return &a, nil
}

// ListByEntity devuelve los contactos de la entidad en orden de ID.
func (r *AssociationRepo) ListByEntity(_ context.Context, entityID string) ([]*entity.Association, error) {
	return r.filter(func(a entity.Association) bool { return a.EntityID == entityID }), nil
}

func (r *AssociationRepo) ListByPerson(_ context.Context, personID int64) ([]*entity.Association, error) {
	return r.filter(func(a entity.Association) bool { return a.PersonID == personID }), nil
}

func (r *AssociationRepo) filter(match func(entity.Association) bool) []*entity.Association {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Association, 0)
	for _, id := range sortedKeys(r.s.associations) {
		a := r.s.associations[id]
		if match(a) {
			out = append(out, &a)
		}
	}
	return out
}

func (r *AssociationRepo) Update(_ context.Context, a *entity.Association) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.associations[a.ID]; !ok {
		return notFound("contacto", a.ID)
	}
	r.s.associations[a.ID] = *a
	return nil
}

func (r *AssociationRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.associations[id]; !ok {
		return notFound("contacto", id)
	}
	delete(r.s.associations, id)
	return nil
}

// ── Categorías ───────────────────────────────────────────────────────────────

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, id := range sortedKeys(r.s.categories) {
		c := r.s.categories[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *CategoryRepo) ListByIDs(_ context.Context, ids []int64) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.s.categories[id]; ok {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, notFound("categoría", id)
	}
	return &c, nil
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.ID == 0 {
		c.ID = r.s.nextID("categories")
	} else {
		r.s.bump("categories", c.ID)
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return notFound("categoría", c.ID)
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return notFound("categoría", id)
	}
	delete(r.s.categories, id)
	return nil
}
