package rest

import (
	"context"
	"fmt"

	"github.com/jhoicas/contactos-api/internal/domain/entity"
	"github.com/jhoicas/contactos-api/internal/domain/repository"
)

var _ repository.PersonRepository = (*PersonRepo)(nil)

// PersonRepo adaptador de /persons.
type PersonRepo struct{ c *Client }

type personJSON struct {
	ID      int64  `json:"id,omitempty"`
	Ref     string `json:"ref"`
	Name    string `json:"name"`
	Name2   string `json:"name2"`
	Phone   string `json:"phone"`
	Phone2  string `json:"phone2"`
	Fax     string `json:"fax"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Lang    string `json:"lang"`
	Notes   string `json:"notes"`
}

func personToJSON(p *entity.Person) personJSON {
	return personJSON{
		ID: p.ID, Ref: p.Ref, Name: p.Name, Name2: p.Name2, Phone: p.Phone, Phone2: p.Phone2,
		Fax: p.Fax, Email: p.Email, Address: p.Address, Lang: p.Lang, Notes: p.Notes,
	}
}

func (j personJSON) entity() *entity.Person {
	return &entity.Person{
		ID: j.ID, Ref: j.Ref, Name: j.Name, Name2: j.Name2, Phone: j.Phone, Phone2: j.Phone2,
		Fax: j.Fax, Email: j.Email, Address: j.Address, Lang: j.Lang, Notes: j.Notes,
	}
}

// Create POST /persons; toma el ID asignado por el backend.
func (r *PersonRepo) Create(ctx context.Context, p *entity.Person) error {
	var out personJSON
	resp, err := r.c.http.R().SetContext(ctx).SetBody(personToJSON(p)).SetResult(&out).Post("/persons")
	if err := r.c.check("crear persona", resp, err); err != nil {
		return err
	}
	if out.ID == 0 {
		return fmt.Errorf("crear persona: el backend no devolvió id")
	}
	p.ID = out.ID
	return nil
}

func (r *PersonRepo) GetByID(ctx context.Context, id int64) (*entity.Person, error) {
	var out personJSON
	resp, err := r.c.http.R().SetContext(ctx).SetResult(&out).Get(idPath("persons", id))
	if err := r.c.check(fmt.Sprintf("obtener persona %d", id), resp, err); err != nil {
		return nil, err
	}
	return out.entity(), nil
}

// ListByIDs GET /persons?ids=1,2,3
func (r *PersonRepo) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Person, error) {
	if len(ids) == 0 {
		return []*entity.Person{}, nil
	}
	var out []personJSON
	resp, err := r.c.http.R().SetContext(ctx).SetQueryParam("ids", joinIDs(ids)).SetResult(&out).Get("/persons")
	if err := r.c.check("listar personas", resp, err); err != nil {
		return nil, err
	}
	list := make([]*entity.Person, 0, len(out))
	for _, j := range out {
		list = append(list, j.entity())
	}
	return list, nil
}

func (r *PersonRepo) Update(ctx context.Context, p *entity.Person) error {
	resp, err := r.c.http.R().SetContext(ctx).SetBody(personToJSON(p)).Put(idPath("persons", p.ID))
	return r.c.check(fmt.Sprintf("actualizar persona %d", p.ID), resp, err)
}

func (r *PersonRepo) Delete(ctx context.Context, id int64) error {
	resp, err := r.c.http.R().SetContext(ctx).Delete(idPath("persons", id))
	return r.c.check(fmt.Sprintf("borrar persona %d", id), resp, err)
}
