package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contactos-api/internal/application/contacts"
	"github.com/jhoicas/contactos-api/internal/application/dto"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

// CategoryHandler consulta y administración de categorías de contacto.
type CategoryHandler struct {
	svc *contacts.CategoryService
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(svc *contacts.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func categoryInput(r dto.CategoryRequest) contacts.CategoryInput {
	return contacts.CategoryInput{
		Domain:      entity.Domain(r.Domain),
		Subtype:     r.Subtype,
		Name:        r.Name,
		Description: r.Description,
		Inactive:    r.Inactive,
	}
}

// List godoc
// @Summary      Categorías de un dominio
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        domain  query  string  true  "customer | cust_branch | supplier"
// @Success      200  {array}   dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.UserContext(), entity.Domain(c.Query("domain")))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, cat := range list {
		out = append(out, dto.CategoryFromEntity(cat))
	}
	return c.JSON(out)
}

// GetByID GET /api/categories/:id
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	cat, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CategoryFromEntity(*cat))
}

// Create POST /api/categories (solo admin)
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	cat, err := h.svc.Create(c.UserContext(), categoryInput(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CategoryFromEntity(*cat))
}

// Update PUT /api/categories/:id (solo admin)
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	cat, err := h.svc.Update(c.UserContext(), id, categoryInput(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CategoryFromEntity(*cat))
}

// Delete DELETE /api/categories/:id (solo admin; las del sistema devuelven 409)
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
