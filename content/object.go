package content

// ObjectConfig holds an Object node's configuration. Properties/Order
// together form an insertion-ordered map (plain Go maps don't preserve
// order, and §3 requires object field order to match declaration order).
type ObjectConfig struct {
	Properties map[string]Node
	Order      []string
	Required   []string
}

type Object struct {
	Properties map[string]Node // exported for Walk
	Order      []string        // exported for Walk
	config     ObjectConfig
}

func NewObject(config ObjectConfig) *Object {
	return &Object{Properties: config.Properties, Order: config.Order, config: config}
}

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) Required() []string { return o.config.Required }

func (o *Object) Clone() Node {
	props := make(map[string]Node, len(o.Properties))
	for k, v := range o.Properties {
		props[k] = v.Clone()
	}
	order := append([]string(nil), o.Order...)
	required := append([]string(nil), o.config.Required...)
	cfg := ObjectConfig{Properties: props, Order: order, Required: required}
	return &Object{Properties: props, Order: order, config: cfg}
}

func (o *Object) Accept(v Visitor) error { return v.VisitObject(o) }
