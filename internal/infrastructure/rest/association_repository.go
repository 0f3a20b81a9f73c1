package rest

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/contactos-api/internal/domain/entity"
	"github.com/jhoicas/contactos-api/internal/domain/repository"
)

var _ repository.AssociationRepository = (*AssociationRepo)(nil)

// AssociationRepo adaptador de /contacts.
type AssociationRepo struct{ c *Client }

// entity_id viaja siempre como string, sea ID numérico o código de sucursal.
type associationJSON struct {
	ID       int64  `json:"id,omitempty"`
	PersonID int64  `json:"person_id"`
	Type     int64  `json:"type"`
	Action   string `json:"action"`
	EntityID string `json:"entity_id"`
	Inactive bool   `json:"inactive"`
}

func associationToJSON(a *entity.Association) associationJSON {
	return associationJSON{
		ID: a.ID, PersonID: a.PersonID, Type: a.Type, Action: a.Action, EntityID: a.EntityID, Inactive: a.Inactive,
	}
}

func (j associationJSON) entity() *entity.Association {
	return &entity.Association{
		ID: j.ID, PersonID: j.PersonID, Type: j.Type, Action: j.Action, EntityID: j.EntityID, Inactive: j.Inactive,
	}
}

func (r *AssociationRepo) Create(ctx context.Context, a *entity.Association) error {
	var out associationJSON
	resp, err := r.c.http.R().SetContext(ctx).SetBody(associationToJSON(a)).SetResult(&out).Post("/contacts")
	if err := r.c.check("crear contacto", resp, err); err != nil {
		return err
	}
	if out.ID == 0 {
		return fmt.Errorf("crear contacto: el backend no devolvió id")
	}
	a.ID = out.ID
	return nil
}

func (r *AssociationRepo) GetByID(ctx context.Context, id int64) (*entity.Association, error) {
	var out associationJSON
	resp, err := r.c.http.R().SetContext(ctx).SetResult(&out).Get(idPath("contacts", id))
	if err := r.c.check(fmt.Sprintf("obtener contacto %d", id), resp, err); err != nil {
		return nil, err
	}
	return out.entity(), nil
}

// ListByEntity GET /contacts?entity_id=...
func (r *AssociationRepo) ListByEntity(ctx context.Context, entityID string) ([]*entity.Association, error) {
	return r.list(ctx, "entity_id", entityID)
}

// ListByPerson GET /contacts?person_id=...
func (r *AssociationRepo) ListByPerson(ctx context.Context, personID int64) ([]*entity.Association, error) {
	return r.list(ctx, "person_id", strconv.FormatInt(personID, 10))
}

func (r *AssociationRepo) list(ctx context.Context, param, value string) ([]*entity.Association, error) {
	var out []associationJSON
	resp, err := r.c.http.R().SetContext(ctx).SetQueryParam(param, value).SetResult(&out).Get("/contacts")
	if err := r.c.check("listar contactos por "+param, resp, err); err != nil {
		return nil, err
	}
	list := make([]*entity.Association, 0, len(out))
	for _, j := range out {
		list = append(list, j.entity())
	}
	return list, nil
}

func (r *AssociationRepo) Update(ctx context.Context, a *entity.Association) error {
	resp, err := r.c.http.R().SetContext(ctx).SetBody(associationToJSON(a)).Put(idPath("contacts", a.ID))
	return r.c.check(fmt.Sprintf("actualizar contacto %d", a.ID), resp, err)
}

func (r *AssociationRepo) Delete(ctx context.Context, id int64) error {
	resp, err := r.c.http.R().SetContext(ctx).Delete(idPath("contacts", id))
	return r.c.check(fmt.Sprintf("borrar contacto %d", id), resp, err)
}
