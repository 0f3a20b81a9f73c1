package entity

// Association vínculo tipado entre una Person y una entidad de negocio (el "contacto").
// EntityID se interpreta según el dominio de quien llama; no lleva discriminador.
type Association struct {
	ID       int64
	PersonID int64
	Type     int64  // ID de Category
	Action   string // copia de Category.Subtype
	EntityID string
	Inactive bool
}
