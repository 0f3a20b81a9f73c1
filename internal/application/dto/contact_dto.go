package dto

import "github.com/jhoicas/contactos-api/internal/domain/entity"

// CreateContactRequest body para POST /api/entities/:domain/:entity/contacts.
type CreateContactRequest struct {
	CategoryID int64  `json:"category_id"`
	Ref        string `json:"ref"`
	Name       string `json:"name"`
	Name2      string `json:"name2,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Phone2     string `json:"phone2,omitempty"`
	Fax        string `json:"fax,omitempty"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
	Lang       string `json:"lang,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Person convierte el body en la ficha a crear.
func (r CreateContactRequest) Person() entity.Person {
	return entity.Person{
		Ref: r.Ref, Name: r.Name, Name2: r.Name2, Phone: r.Phone, Phone2: r.Phone2,
		Fax: r.Fax, Email: r.Email, Address: r.Address, Lang: r.Lang, Notes: r.Notes,
	}
}

// UpdateContactRequest body para PUT /api/contacts/:id. Campos ausentes no se modifican.
type UpdateContactRequest struct {
	CategoryID *int64  `json:"category_id,omitempty"`
	Ref        *string `json:"ref,omitempty"`
	Name       *string `json:"name,omitempty"`
	Name2      *string `json:"name2,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Phone2     *string `json:"phone2,omitempty"`
	Fax        *string `json:"fax,omitempty"`
	Email      *string `json:"email,omitempty"`
	Address    *string `json:"address,omitempty"`
	Lang       *string `json:"lang,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// Patch convierte el body en un PersonPatch.
func (r UpdateContactRequest) Patch() entity.PersonPatch {
	return entity.PersonPatch{
		Ref: r.Ref, Name: r.Name, Name2: r.Name2, Phone: r.Phone, Phone2: r.Phone2,
		Fax: r.Fax, Email: r.Email, Address: r.Address, Lang: r.Lang, Notes: r.Notes,
	}
}

// ContactRowResponse fila del directorio de contactos.
type ContactRowResponse struct {
	ID         int64  `json:"id"`
	PersonID   int64  `json:"person_id"`
	CategoryID int64  `json:"category_id"`
	Reference  string `json:"reference"`
	Assignment string `json:"assignment"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Phone2     string `json:"phone2"`
	Fax        string `json:"fax"`
	Email      string `json:"email"`
	Inactive   bool   `json:"inactive"`
}

// ContactListResponse listado del directorio. Degraded=true indica que el backend
// falló y la lista vacía no refleja el estado real.
type ContactListResponse struct {
	Items    []ContactRowResponse `json:"items"`
	Degraded bool                 `json:"degraded"`
}

// DeleteContactResponse resultado de DELETE /api/contacts/:id.
type DeleteContactResponse struct {
	ContactID     int64 `json:"contact_id"`
	PersonID      int64 `json:"person_id"`
	PersonDeleted bool  `json:"person_deleted"`
}

// DeleteContactErrorResponse borrado parcial: el contacto se borró pero la cascada falló.
type DeleteContactErrorResponse struct {
	ErrorResponse
	DeleteContactResponse
}

// DeletePersonResponse resultado de DELETE /api/persons/:id.
type DeletePersonResponse struct {
	PersonID        int64 `json:"person_id"`
	ContactsDeleted int   `json:"contacts_deleted"`
}

// AssociationResponse contacto crudo (vista de persona).
type AssociationResponse struct {
	ID         int64  `json:"id"`
	PersonID   int64  `json:"person_id"`
	CategoryID int64  `json:"category_id"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	Inactive   bool   `json:"inactive"`
}

// ContactRowFromEntity mapea una fila del dominio.
func ContactRowFromEntity(r entity.ContactRow) ContactRowResponse {
	return ContactRowResponse{
		ID: r.ID, PersonID: r.PersonID, CategoryID: r.CategoryID, Reference: r.Reference,
		Assignment: r.Assignment, Name: r.Name, Phone: r.Phone, Phone2: r.Phone2,
		Fax: r.Fax, Email: r.Email, Inactive: r.Inactive,
	}
}
