package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

func TestPersonPatch_Apply(t *testing.T) {
	current := entity.Person{ID: 3, Name: "Ana", Phone: "123", Email: "ana@old"}
	email := "ana@new"
	empty := ""

	got := entity.PersonPatch{Email: &email, Phone: &empty}.Apply(current)

	assert.Equal(t, entity.Person{ID: 3, Name: "Ana", Phone: "", Email: "ana@new"}, got)
	assert.Equal(t, "ana@old", current.Email, "el original no se modifica")
}

func TestPersonPatch_Vacio_NoCambiaNada(t *testing.T) {
	current := entity.Person{ID: 1, Name: "Ana", Lang: "es"}
	assert.Equal(t, current, entity.PersonPatch{}.Apply(current))
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Billing Contact", entity.Category{Name: "Billing", Description: "Billing Contact"}.Label())
	assert.Equal(t, "Billing", entity.Category{Name: "Billing"}.Label())
}

func TestDomain_Valid(t *testing.T) {
	assert.True(t, entity.DomainCustomer.Valid())
	assert.True(t, entity.DomainBranch.Valid())
	assert.True(t, entity.DomainSupplier.Valid())
	assert.False(t, entity.Domain("").Valid())
	assert.False(t, entity.Domain("company").Valid())
}
