package contacts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contactos-api/internal/domain"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ListEntityContacts
// ──────────────────────────────────────────────────────────────────────────────

// Sin contactos no se consultan personas ni categorías.
func TestListEntityContacts_SinContactos_NoConsultaPersonasNiCategorias(t *testing.T) {
	f := newFixture(t, nil)

	rows, err := f.directory.ListEntityContacts(context.Background(), entity.CustomerRef(99))
	require.NoError(t, err)

	assert.NotNil(t, rows, "la lista vacía no debe ser nil")
	assert.Empty(t, rows)
	assert.Zero(t, f.persons.listCalls, "no debe pedir personas")
	assert.Zero(t, f.categories.calls, "no debe pedir categorías")
}

func TestListEntityContacts_FilaConDatosDeEjemplo(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.store.Categories().Create(ctx, &entity.Category{
		ID: 20, Domain: entity.DomainCustomer, Subtype: "invoice", Name: "Billing", Description: "Billing Contact",
	}))
	personID := f.addPerson(t, entity.Person{Name: "John Smith", Email: "john@acme.test"})
	f.link(t, entity.Association{ID: 101, PersonID: personID, Type: 20, Action: "invoice", EntityID: "42"})

	rows, err := f.directory.ListEntityContacts(ctx, entity.CustomerRef(42))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, entity.ContactRow{
		ID:         101,
		PersonID:   personID,
		CategoryID: 20,
		Reference:  "",
		Assignment: "Billing Contact",
		Name:       "John Smith",
		Phone:      "",
		Phone2:     "",
		Fax:        "",
		Email:      "john@acme.test",
		Inactive:   false,
	}, rows[0])
}

func TestListEntityContacts_OrdenadoPorIDDeContacto(t *testing.T) {
	f := newFixture(t, nil)
	p := f.addPerson(t, entity.Person{Name: "Ana"})
	f.link(t, entity.Association{ID: 30, PersonID: p, Type: 1, EntityID: "5"})
	f.link(t, entity.Association{ID: 10, PersonID: p, Type: 2, EntityID: "5"})
	f.link(t, entity.Association{ID: 20, PersonID: p, Type: 3, EntityID: "5"})

	rows, err := f.directory.ListEntityContacts(context.Background(), entity.CustomerRef(5))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []int64{10, 20, 30}, []int64{rows[0].ID, rows[1].ID, rows[2].ID})
}

// Un contacto cuya categoría no existe se omite; el resto se devuelve.
func TestListEntityContacts_CategoriaInexistente_SeOmite(t *testing.T) {
	f := newFixture(t, nil)
	p := f.addPerson(t, entity.Person{Name: "Ana"})
	valid := f.link(t, entity.Association{PersonID: p, Type: 1, EntityID: "8"})
	f.link(t, entity.Association{PersonID: p, Type: 999, EntityID: "8"})

	rows, err := f.directory.ListEntityContacts(context.Background(), entity.CustomerRef(8))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, valid, rows[0].ID)
	assert.Equal(t, "Contacto general", rows[0].Assignment)
}

// El mismo entity_id en otro dominio no se mezcla: manda el dominio de la categoría.
func TestListEntityContacts_MismoIDOtroDominio_NoSeMezcla(t *testing.T) {
	f := newFixture(t, nil)
	p := f.addPerson(t, entity.Person{Name: "Ana"})
	customerContact := f.link(t, entity.Association{PersonID: p, Type: 2, EntityID: "7"})
	supplierContact := f.link(t, entity.Association{PersonID: p, Type: 6, EntityID: "7"})

	rows, err := f.directory.ListEntityContacts(context.Background(), entity.CustomerRef(7))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, customerContact, rows[0].ID)

	rows, err = f.directory.ListEntityContacts(context.Background(), entity.SupplierRef(7))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, supplierContact, rows[0].ID)
	assert.Equal(t, "Contacto de proveedor", rows[0].Assignment)
}

func TestListEntityContacts_SucursalPorCodigo(t *testing.T) {
	f := newFixture(t, nil)
	p := f.addPerson(t, entity.Person{Name: "Luis", Phone: "300"})
	f.link(t, entity.Association{PersonID: p, Type: 5, EntityID: "BOG-01"})

	rows, err := f.directory.ListEntityContacts(context.Background(), entity.BranchRef("BOG-01"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Contacto de entregas", rows[0].Assignment)
	assert.Equal(t, "300", rows[0].Phone)
}

// Sin descripción se usa el nombre; sin ambos, "Unknown".
func TestListEntityContacts_EtiquetaDeAsignacion(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.store.Categories().Create(ctx, &entity.Category{ID: 40, Domain: entity.DomainCustomer, Subtype: "x", Name: "Solo nombre"}))
	require.NoError(t, f.store.Categories().Create(ctx, &entity.Category{ID: 41, Domain: entity.DomainCustomer, Subtype: "y"}))
	p := f.addPerson(t, entity.Person{Name: "Ana"})
	f.link(t, entity.Association{ID: 1, PersonID: p, Type: 40, EntityID: "3"})
	f.link(t, entity.Association{ID: 2, PersonID: p, Type: 41, EntityID: "3"})

	rows, err := f.directory.ListEntityContacts(ctx, entity.CustomerRef(3))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Solo nombre", rows[0].Assignment)
	assert.Equal(t, "Unknown", rows[1].Assignment)
}

// Si la persona ya no existe la fila sale con los campos de persona vacíos.
func TestListEntityContacts_PersonaAusente_CamposVacios(t *testing.T) {
	f := newFixture(t, nil)
	f.link(t, entity.Association{ID: 9, PersonID: 12345, Type: 1, EntityID: "4"})

	rows, err := f.directory.ListEntityContacts(context.Background(), entity.CustomerRef(4))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(12345), rows[0].PersonID)
	assert.Empty(t, rows[0].Name)
	assert.Empty(t, rows[0].Email)
}

func TestListEntityContacts_FalloDeTransporte_SePropaga(t *testing.T) {
	f := newFixture(t, nil)
	f.assocs.listEntityErr = &domain.TransportError{Op: "listar contactos", StatusCode: 503}

	_, err := f.directory.ListEntityContacts(context.Background(), entity.CustomerRef(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestListEntityContacts_ReferenciaVacia_ErrValidation(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.directory.ListEntityContacts(context.Background(), entity.EntityRef{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListEntityContactsOrEmpty
// ──────────────────────────────────────────────────────────────────────────────

func TestListEntityContactsOrEmpty_FalloDevuelveVacioDegradado(t *testing.T) {
	f := newFixture(t, nil)
	f.assocs.listEntityErr = &domain.TransportError{Op: "listar contactos", StatusCode: 500}

	rows, degraded := f.directory.ListEntityContactsOrEmpty(context.Background(), entity.CustomerRef(1))
	assert.True(t, degraded)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestListEntityContactsOrEmpty_SinFallo_NoDegradado(t *testing.T) {
	f := newFixture(t, nil)
	p := f.addPerson(t, entity.Person{Name: "Ana"})
	f.link(t, entity.Association{PersonID: p, Type: 1, EntityID: "1"})

	rows, degraded := f.directory.ListEntityContactsOrEmpty(context.Background(), entity.CustomerRef(1))
	assert.False(t, degraded)
	assert.Len(t, rows, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListPersonContacts
// ──────────────────────────────────────────────────────────────────────────────

func TestListPersonContacts_TodosLosDominios(t *testing.T) {
	f := newFixture(t, nil)
	p := f.addPerson(t, entity.Person{Name: "Ana"})
	f.link(t, entity.Association{ID: 2, PersonID: p, Type: 6, EntityID: "11"})
	f.link(t, entity.Association{ID: 1, PersonID: p, Type: 1, EntityID: "10"})
	f.link(t, entity.Association{ID: 3, PersonID: p + 1, Type: 1, EntityID: "10"})

	list, err := f.directory.ListPersonContacts(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
}

func TestListPersonContacts_PersonaInexistente_ErrNotFound(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.directory.ListPersonContacts(context.Background(), 777)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
