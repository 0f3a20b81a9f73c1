package entity

// Domain contexto de negocio de una categoría y de un entity_id.
type Domain string

const (
	DomainCustomer Domain = "customer"
	DomainSupplier Domain = "supplier"
	DomainBranch   Domain = "cust_branch"
)

// Valid informa si d es uno de los dominios conocidos.
func (d Domain) Valid() bool {
	switch d {
	case DomainCustomer, DomainSupplier, DomainBranch:
		return true
	}
	return false
}

// Category clasifica el tipo de relación de una persona con una entidad.
// Subtype es la acción canónica que se copia en Association.Action.
type Category struct {
	ID          int64
	Domain      Domain
	Subtype     string
	Name        string
	Description string
	SystemOwned bool // protegida contra borrado
	Inactive    bool
}

// Label texto a mostrar: la descripción, o el nombre si no hay descripción.
func (c Category) Label() string {
	if c.Description != "" {
		return c.Description
	}
	return c.Name
}
