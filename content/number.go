package content

// Subtype distinguishes the numeric representation a Number node produces.
type Subtype string

const (
	SubtypeI64   Subtype = "i64"
	SubtypeU64   Subtype = "u64"
	SubtypeFloat Subtype = "f64"
)

// NumberConfig holds a Number node's configuration. Field names follow the
// config-struct shape the newer schemas/number.go + schemas/integer.go
// pair uses (Minimum/Maximum/DefaultVal), extended with the range-plus-
// subtype and Categorical generation parameters those validation-only
// schemas never needed.
type NumberConfig struct {
	Subtype     Subtype
	Minimum     *float64
	Maximum     *float64
	DefaultVal  *float64
	Categorical []float64 // uniform draw from this fixed set when non-empty, ignoring Minimum/Maximum
}

// Number is a numeric content node covering both the integer and
// floating-point cases of a Number(range, subtype) model.
type Number struct {
	config NumberConfig
}

func NewNumber(config NumberConfig) *Number {
	return &Number{config: config}
}

func (n *Number) Kind() Kind { return KindNumber }

func (n *Number) Subtype() Subtype      { return n.config.Subtype }
func (n *Number) Minimum() *float64     { return n.config.Minimum }
func (n *Number) Maximum() *float64     { return n.config.Maximum }
func (n *Number) DefaultValue() *float64 { return n.config.DefaultVal }
func (n *Number) Categorical() []float64 { return n.config.Categorical }

func (n *Number) Clone() Node {
	cfg := n.config
	if n.config.Minimum != nil {
		v := *n.config.Minimum
		cfg.Minimum = &v
	}
	if n.config.Maximum != nil {
		v := *n.config.Maximum
		cfg.Maximum = &v
	}
	if n.config.DefaultVal != nil {
		v := *n.config.DefaultVal
		cfg.DefaultVal = &v
	}
	if n.config.Categorical != nil {
		cfg.Categorical = append([]float64(nil), n.config.Categorical...)
	}
	return &Number{config: cfg}
}

func (n *Number) Accept(v Visitor) error { return v.VisitNumber(n) }
