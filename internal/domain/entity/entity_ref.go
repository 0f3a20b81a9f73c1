package entity

import (
	"strconv"
	"strings"

	"github.com/jhoicas/contactos-api/internal/domain"
)

// EntityRef referencia a la entidad dueña de los contactos: cliente, sucursal o proveedor.
// El dominio lo fija quien construye la referencia, nunca se deduce de la clave.
type EntityRef struct {
	domain Domain
	key    string
}

// CustomerRef referencia a un cliente por su ID numérico.
func CustomerRef(id int64) EntityRef {
	return EntityRef{domain: DomainCustomer, key: strconv.FormatInt(id, 10)}
}

// BranchRef referencia a una sucursal de cliente por su código.
func BranchRef(code string) EntityRef {
	return EntityRef{domain: DomainBranch, key: code}
}

// SupplierRef referencia a un proveedor por su ID numérico.
func SupplierRef(id int64) EntityRef {
	return EntityRef{domain: DomainSupplier, key: strconv.FormatInt(id, 10)}
}

// ParseEntityRef construye la referencia desde la entrada de transporte (path, query).
func ParseEntityRef(d Domain, raw string) (EntityRef, error) {
	raw = strings.TrimSpace(raw)
	switch d {
	case DomainCustomer, DomainSupplier:
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return EntityRef{}, domain.Validationf("id de %s inválido: %q", d, raw)
		}
		if d == DomainCustomer {
			return CustomerRef(id), nil
		}
		return SupplierRef(id), nil
	case DomainBranch:
		if raw == "" {
			return EntityRef{}, domain.Validationf("código de sucursal vacío")
		}
		return BranchRef(raw), nil
	}
	return EntityRef{}, domain.Validationf("dominio desconocido: %q", d)
}

// Domain dominio de la entidad.
func (r EntityRef) Domain() Domain { return r.domain }

// Key valor que se guarda en Association.EntityID.
func (r EntityRef) Key() string { return r.key }

// IsZero true si la referencia no se construyó con alguno de los constructores.
func (r EntityRef) IsZero() bool { return r.domain == "" || r.key == "" }

func (r EntityRef) String() string { return string(r.domain) + ":" + r.key }
