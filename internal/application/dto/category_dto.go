package dto

import "github.com/jhoicas/contactos-api/internal/domain/entity"

// CategoryRequest body para POST/PUT /api/categories.
type CategoryRequest struct {
	Domain      string `json:"domain"`
	Subtype     string `json:"subtype"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Inactive    bool   `json:"inactive,omitempty"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Domain      string `json:"domain"`
	Subtype     string `json:"subtype"`
	Name        string `json:"name"`
	Description string `json:"description"`
	System      bool   `json:"system"`
	Inactive    bool   `json:"inactive"`
}

// CategoryFromEntity mapea una categoría del dominio.
func CategoryFromEntity(c entity.Category) CategoryResponse {
	return CategoryResponse{
		ID: c.ID, Domain: string(c.Domain), Subtype: c.Subtype, Name: c.Name,
		Description: c.Description, System: c.SystemOwned, Inactive: c.Inactive,
	}
}
