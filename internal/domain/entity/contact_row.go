package entity

// ContactRow fila lista para mostrar: asociación + persona + categoría.
// Los campos de persona ausentes quedan en "" para que la vista sea estable.
type ContactRow struct {
	ID         int64
	PersonID   int64
	CategoryID int64
	Reference  string
	Assignment string
	Name       string
	Phone      string
	Phone2     string
	Fax        string
	Email      string
	Inactive   bool
}
