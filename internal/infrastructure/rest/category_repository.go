package rest

import (
	"context"
	"fmt"

	"github.com/jhoicas/contactos-api/internal/domain/entity"
	"github.com/jhoicas/contactos-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo adaptador de /categories. En el backend el dominio se llama "type".
type CategoryRepo struct{ c *Client }

type categoryJSON struct {
	ID          int64  `json:"id,omitempty"`
	Type        string `json:"type"`
	Subtype     string `json:"subtype"`
	Name        string `json:"name"`
	Description string `json:"description"`
	System      bool   `json:"system"`
	Inactive    bool   `json:"inactive"`
}

func categoryToJSON(c *entity.Category) categoryJSON {
	return categoryJSON{
		ID: c.ID, Type: string(c.Domain), Subtype: c.Subtype, Name: c.Name,
		Description: c.Description, System: c.SystemOwned, Inactive: c.Inactive,
	}
}

func (j categoryJSON) entity() *entity.Category {
	return &entity.Category{
		ID: j.ID, Domain: entity.Domain(j.Type), Subtype: j.Subtype, Name: j.Name,
		Description: j.Description, SystemOwned: j.System, Inactive: j.Inactive,
	}
}

// List GET /categories (tabla completa; el filtrado por dominio se hace en el resolver).
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var out []categoryJSON
	resp, err := r.c.http.R().SetContext(ctx).SetResult(&out).Get("/categories")
	if err := r.c.check("listar categorías", resp, err); err != nil {
		return nil, err
	}
	return categoriesFromJSON(out), nil
}

// ListByIDs GET /categories?ids=1,2
func (r *CategoryRepo) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return []*entity.Category{}, nil
	}
	var out []categoryJSON
	resp, err := r.c.http.R().SetContext(ctx).SetQueryParam("ids", joinIDs(ids)).SetResult(&out).Get("/categories")
	if err := r.c.check("listar categorías por id", resp, err); err != nil {
		return nil, err
	}
	return categoriesFromJSON(out), nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var out categoryJSON
	resp, err := r.c.http.R().SetContext(ctx).SetResult(&out).Get(idPath("categories", id))
	if err := r.c.check(fmt.Sprintf("obtener categoría %d", id), resp, err); err != nil {
		return nil, err
	}
	return out.entity(), nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	var out categoryJSON
	resp, err := r.c.http.R().SetContext(ctx).SetBody(categoryToJSON(c)).SetResult(&out).Post("/categories")
	if err := r.c.check("crear categoría", resp, err); err != nil {
		return err
	}
	if out.ID == 0 {
		return fmt.Errorf("crear categoría: el backend no devolvió id")
	}
	c.ID = out.ID
	return nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	resp, err := r.c.http.R().SetContext(ctx).SetBody(categoryToJSON(c)).Put(idPath("categories", c.ID))
	return r.c.check(fmt.Sprintf("actualizar categoría %d", c.ID), resp, err)
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	resp, err := r.c.http.R().SetContext(ctx).Delete(idPath("categories", id))
	return r.c.check(fmt.Sprintf("borrar categoría %d", id), resp, err)
}

func categoriesFromJSON(in []categoryJSON) []*entity.Category {
	out := make([]*entity.Category, 0, len(in))
	for _, j := range in {
		out = append(out, j.entity())
	}
	return out
}
