package content

// Optional wraps another node with a probability of being present at all;
// when absent the field compiles to a null value; the field is never
// omitted. Probability is the chance of presence: the compiler draws its
// own Bernoulli coin with this bias and does not use gen.Maybe, whose coin
// stays fixed at 50/50.
type Optional struct {
	Inner       Node
	Probability float64
}

func NewOptional(inner Node, probability float64) *Optional {
	return &Optional{Inner: inner, Probability: probability}
}

func (o *Optional) Kind() Kind { return KindOptional }

func (o *Optional) Clone() Node {
	return &Optional{Inner: o.Inner.Clone(), Probability: o.Probability}
}

func (o *Optional) Accept(v Visitor) error { return v.VisitOptional(o) }
