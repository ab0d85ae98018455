package content

// Unique wraps Inner so every value it produces across the whole sampling
// run is distinct, by re-drawing on collision up to a retry budget (see
// compiler.Options.UniqueRetryBudget). Comparison uses value.Equal.
type Unique struct {
	Inner Node
}

func NewUnique(inner Node) *Unique {
	return &Unique{Inner: inner}
}

func (u *Unique) Kind() Kind { return KindUnique }

func (u *Unique) Clone() Node { return &Unique{Inner: u.Inner.Clone()} }

func (u *Unique) Accept(v Visitor) error { return v.VisitUnique(u) }
