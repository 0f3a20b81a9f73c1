package memory

import (
	"context"

	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

// DefaultCategories categorías base del sistema (marcadas como SystemOwned).
func DefaultCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Domain: entity.DomainCustomer, Subtype: "general", Name: "General", Description: "Contacto general", SystemOwned: true},
		{ID: 2, Domain: entity.DomainCustomer, Subtype: "invoice", Name: "Facturas", Description: "Contacto de facturación", SystemOwned: true},
		{ID: 3, Domain: entity.DomainCustomer, Subtype: "order", Name: "Pedidos", Description: "Contacto de pedidos", SystemOwned: true},
		{ID: 4, Domain: entity.DomainBranch, Subtype: "general", Name: "General", Description: "Contacto de sucursal", SystemOwned: true},
		{ID: 5, Domain: entity.DomainBranch, Subtype: "delivery", Name: "Entregas", Description: "Contacto de entregas", SystemOwned: true},
		{ID: 6, Domain: entity.DomainSupplier, Subtype: "general", Name: "General", Description: "Contacto de proveedor", SystemOwned: true},
		{ID: 7, Domain: entity.DomainSupplier, Subtype: "order", Name: "Compras", Description: "Contacto de órdenes de compra", SystemOwned: true},
	}
}

// Seed carga categorías en el almacén conservando sus IDs.
func (s *Store) Seed(ctx context.Context, categories []entity.Category) error {
	repo := s.Categories()
	for i := range categories {
		c := categories[i]
		if err := repo.Create(ctx, &c); err != nil {
			return err
		}
	}
	return nil
}
