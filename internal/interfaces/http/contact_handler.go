package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contactos-api/internal/application/contacts"
	"github.com/jhoicas/contactos-api/internal/application/dto"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

// ContactHandler endpoints del directorio de contactos de clientes, sucursales y proveedores.
type ContactHandler struct {
	directory *contacts.DirectoryAggregator
	lifecycle *contacts.LifecycleManager
}

// NewContactHandler construye el handler.
func NewContactHandler(directory *contacts.DirectoryAggregator, lifecycle *contacts.LifecycleManager) *ContactHandler {
	return &ContactHandler{directory: directory, lifecycle: lifecycle}
}

func entityRef(c *fiber.Ctx) (entity.EntityRef, error) {
	return entity.ParseEntityRef(entity.Domain(c.Params("domain")), c.Params("entity"))
}

// List godoc
// @Summary      Contactos de una entidad
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        domain  path  string  true  "customer | cust_branch | supplier"
// @Param        entity  path  string  true  "ID de cliente/proveedor o código de sucursal"
// @Success      200  {object}  dto.ContactListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/entities/{domain}/{entity}/contacts [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	ref, err := entityRef(c)
	if err != nil {
		return respondError(c, err)
	}
	rows, degraded := h.directory.ListEntityContactsOrEmpty(c.UserContext(), ref)
	out := dto.ContactListResponse{Items: make([]dto.ContactRowResponse, 0, len(rows)), Degraded: degraded}
	for _, r := range rows {
		out.Items = append(out.Items, dto.ContactRowFromEntity(r))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta de contacto (persona + vínculo)
// @Tags         contacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        domain  path  string  true  "customer | cust_branch | supplier"
// @Param        entity  path  string  true  "ID de cliente/proveedor o código de sucursal"
// @Param        body    body  dto.CreateContactRequest  true  "Datos de la persona y categoría"
// @Success      201  {object}  dto.ContactRowResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/entities/{domain}/{entity}/contacts [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	ref, err := entityRef(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	row, err := h.lifecycle.CreateContact(c.UserContext(), ref, in.Person(), in.CategoryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ContactRowFromEntity(*row))
}

// GetByID GET /api/contacts/:id
func (h *ContactHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	row, err := h.lifecycle.GetContact(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ContactRowFromEntity(*row))
}

// Update PUT /api/contacts/:id
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.UpdateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.lifecycle.UpdateContact(c.UserContext(), id, in.Patch(), in.CategoryID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/contacts/:id (borra la persona si era su último contacto)
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	res, err := h.lifecycle.DeleteContact(c.UserContext(), id)
	if err != nil && res != nil {
		// El contacto ya se borró; falló la cascada sobre la persona.
		status, code := errorStatus(err)
		return c.Status(status).JSON(dto.DeleteContactErrorResponse{
			ErrorResponse: dto.ErrorResponse{Code: code, Message: err.Error()},
			DeleteContactResponse: dto.DeleteContactResponse{
				ContactID:     res.ContactID,
				PersonID:      res.PersonID,
				PersonDeleted: res.PersonDeleted,
			},
		})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteContactResponse{
		ContactID:     res.ContactID,
		PersonID:      res.PersonID,
		PersonDeleted: res.PersonDeleted,
	})
}
