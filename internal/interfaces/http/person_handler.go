package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contactos-api/internal/application/contacts"
	"github.com/jhoicas/contactos-api/internal/application/dto"
)

// PersonHandler vista y baja administrativa de personas.
type PersonHandler struct {
	directory *contacts.DirectoryAggregator
	lifecycle *contacts.LifecycleManager
}

// NewPersonHandler construye el handler.
func NewPersonHandler(directory *contacts.DirectoryAggregator, lifecycle *contacts.LifecycleManager) *PersonHandler {
	return &PersonHandler{directory: directory, lifecycle: lifecycle}
}

// Contacts GET /api/persons/:id/contacts
func (h *PersonHandler) Contacts(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	list, err := h.directory.ListPersonContacts(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.AssociationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.AssociationResponse{
			ID: a.ID, PersonID: a.PersonID, CategoryID: a.Type,
			Action: a.Action, EntityID: a.EntityID, Inactive: a.Inactive,
		})
	}
	return c.JSON(out)
}

// Delete DELETE /api/persons/:id (solo admin)
func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	res, err := h.lifecycle.DeletePerson(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletePersonResponse{PersonID: res.PersonID, ContactsDeleted: res.ContactsDeleted})
}
