package content

// Datasource compiles to a gen.Dummy generator whose draws come from the
// faker registry (compiler/faker.go, backed by gofakeit) under the given
// Tag, e.g. "person.full_name", "internet.email", "address.city". Gets its
// own content kind (see SPEC_FULL §4.2) rather than folding into
// String.Format, since a faker draw has no length/pattern constraints to
// share with plain strings.
type Datasource struct {
	Tag string
}

func NewDatasource(tag string) *Datasource {
	return &Datasource{Tag: tag}
}

func (d *Datasource) Kind() Kind { return KindDatasource }

func (d *Datasource) Clone() Node { return &Datasource{Tag: d.Tag} }

func (d *Datasource) Accept(v Visitor) error { return v.VisitDatasource(d) }
