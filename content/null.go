package content

// Null always compiles to the null value; it carries no configuration.
type Null struct{}

func (n *Null) Kind() Kind   { return KindNull }
func (n *Null) Clone() Node  { return &Null{} }
func (n *Null) Accept(v Visitor) error { return v.VisitNull(n) }
