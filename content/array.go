package content

// ArrayConfig holds an Array node's configuration, field names following
// schemas/array.go (MinItems/MaxItems/UniqueItems).
type ArrayConfig struct {
	Item        Node
	MinItems    int
	MaxItems    int
	UniqueItems bool
}

type Array struct {
	Item Node // exported for Walk
	config ArrayConfig
}

func NewArray(config ArrayConfig) *Array {
	return &Array{Item: config.Item, config: config}
}

func (a *Array) Kind() Kind { return KindArray }

func (a *Array) MinItems() int      { return a.config.MinItems }
func (a *Array) MaxItems() int      { return a.config.MaxItems }
func (a *Array) UniqueItems() bool  { return a.config.UniqueItems }

func (a *Array) Clone() Node {
	cfg := a.config
	cfg.Item = a.Item.Clone()
	return &Array{Item: cfg.Item, config: cfg}
}

func (a *Array) Accept(v Visitor) error { return v.VisitArray(a) }
