package content

// OneOf picks exactly one of Branches per record, weighted by Weights
// (same length and order as Branches; a nil Weights means uniform).
type OneOf struct {
	Branches []Node
	Weights  []float64
}

func NewOneOf(branches []Node, weights []float64) *OneOf {
	return &OneOf{Branches: branches, Weights: weights}
}

func (o *OneOf) Kind() Kind { return KindOneOf }

func (o *OneOf) Clone() Node {
	branches := make([]Node, len(o.Branches))
	for i, b := range o.Branches {
		branches[i] = b.Clone()
	}
	return &OneOf{Branches: branches, Weights: append([]float64(nil), o.Weights...)}
}

func (o *OneOf) Accept(v Visitor) error { return v.VisitOneOf(o) }
