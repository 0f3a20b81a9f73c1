package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contactos-api/internal/domain"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

func TestParseEntityRef(t *testing.T) {
	cases := []struct {
		name    string
		domain  entity.Domain
		raw     string
		want    entity.EntityRef
		wantErr bool
	}{
		{name: "cliente", domain: entity.DomainCustomer, raw: "42", want: entity.CustomerRef(42)},
		{name: "proveedor con espacios", domain: entity.DomainSupplier, raw: " 7 ", want: entity.SupplierRef(7)},
		{name: "sucursal por código", domain: entity.DomainBranch, raw: "BOG-01", want: entity.BranchRef("BOG-01")},
		{name: "cliente no numérico", domain: entity.DomainCustomer, raw: "abc", wantErr: true},
		{name: "proveedor cero", domain: entity.DomainSupplier, raw: "0", wantErr: true},
		{name: "sucursal vacía", domain: entity.DomainBranch, raw: "  ", wantErr: true},
		{name: "dominio desconocido", domain: entity.Domain("warehouse"), raw: "1", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entity.ParseEntityRef(tc.domain, tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// El mismo valor en dominios distintos son referencias distintas.
func TestEntityRef_DominioExplicito(t *testing.T) {
	customer := entity.CustomerRef(7)
	supplier := entity.SupplierRef(7)

	assert.Equal(t, customer.Key(), supplier.Key())
	assert.NotEqual(t, customer, supplier)
	assert.Equal(t, "customer:7", customer.String())
	assert.Equal(t, "supplier:7", supplier.String())
	assert.Equal(t, entity.DomainBranch, entity.BranchRef("X").Domain())
	assert.True(t, entity.EntityRef{}.IsZero())
}
