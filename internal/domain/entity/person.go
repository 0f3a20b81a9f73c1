package entity

// Person ficha de contacto independiente de cualquier cliente, sucursal o proveedor.
// Su ciclo de vida no depende de una asociación concreta.
type Person struct {
	ID      int64
	Ref     string
	Name    string
	Name2   string
	Phone   string
	Phone2  string
	Fax     string
	Email   string
	Address string
	Lang    string // idioma de documentos (etiqueta BCP 47)
	Notes   string
}

// PersonPatch actualización parcial: un campo nil conserva el valor actual.
type PersonPatch struct {
	Ref     *string
	Name    *string
	Name2   *string
	Phone   *string
	Phone2  *string
	Fax     *string
	Email   *string
	Address *string
	Lang    *string
	Notes   *string
}

// Apply devuelve una copia de p con los campos presentes en el patch.
func (patch PersonPatch) Apply(p Person) Person {
	merge := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	merge(&p.Ref, patch.Ref)
	merge(&p.Name, patch.Name)
	merge(&p.Name2, patch.Name2)
	merge(&p.Phone, patch.Phone)
	merge(&p.Phone2, patch.Phone2)
	merge(&p.Fax, patch.Fax)
	merge(&p.Email, patch.Email)
	merge(&p.Address, patch.Address)
	merge(&p.Lang, patch.Lang)
	merge(&p.Notes, patch.Notes)
	return p
}
