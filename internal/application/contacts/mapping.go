package contacts

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/jhoicas/contactos-api/internal/domain"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

// unknownAssignment etiqueta para contactos cuya categoría no tiene descripción.
const unknownAssignment = "Unknown"

// uniqueIDs elimina duplicados y ceros, en orden ascendente.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// buildRow une asociación, persona (puede ser nil) y descripción de la categoría.
func buildRow(a *entity.Association, p *entity.Person, descriptions map[int64]string) entity.ContactRow {
	row := entity.ContactRow{
		ID:         a.ID,
		PersonID:   a.PersonID,
		CategoryID: a.Type,
		Assignment: unknownAssignment,
		Inactive:   a.Inactive,
	}
	if d, ok := descriptions[a.Type]; ok && d != "" {
		row.Assignment = d
	}
	if p != nil {
		row.Reference = p.Ref
		row.Name = p.Name
		row.Phone = p.Phone
		row.Phone2 = p.Phone2
		row.Fax = p.Fax
		row.Email = p.Email
	}
	return row
}

// normalizePerson recorta espacios, valida campos obligatorios y canoniza el idioma.
func normalizePerson(p *entity.Person) error {
	fields := []*string{&p.Ref, &p.Name, &p.Name2, &p.Phone, &p.Phone2, &p.Fax, &p.Email, &p.Address, &p.Lang}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
	if p.Name == "" {
		return domain.Validationf("name es requerido")
	}
	if p.Lang != "" {
		tag, err := language.Parse(p.Lang)
		if err != nil {
			return domain.Validationf("lang inválido: %q", p.Lang)
		}
		p.Lang = tag.String()
	}
	return nil
}

// normalizePatch recorta solo los campos presentes en el patch, valida name si viene
// y canoniza lang si viene. Los campos ausentes conservan lo que guarde el backend.
func normalizePatch(patch entity.PersonPatch) (entity.PersonPatch, error) {
	fields := []**string{&patch.Ref, &patch.Name, &patch.Name2, &patch.Phone, &patch.Phone2, &patch.Fax, &patch.Email, &patch.Address, &patch.Lang}
	for _, f := range fields {
		if *f != nil {
			v := strings.TrimSpace(**f)
			*f = &v
		}
	}
	if patch.Name != nil && *patch.Name == "" {
		return patch, domain.Validationf("name es requerido")
	}
	if patch.Lang != nil && *patch.Lang != "" {
		tag, err := language.Parse(*patch.Lang)
		if err != nil {
			return patch, domain.Validationf("lang inválido: %q", *patch.Lang)
		}
		v := tag.String()
		patch.Lang = &v
	}
	return patch, nil
}
