package compiler

import (
	"math/rand"

	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/gen"
	"github.com/synthkit/synth/value"
)

// objectField is one compiled property of an Object node. Non-script
// fields are backed by a gen.Shared cell registered in the collection's
// Scope, so a same_as field appearing later in declaration order can read
// the value without re-stepping the generator; script fields instead read
// directly from the round-in-progress object. Script fields are not
// registered in the Scope, so a same_as reference to one fails to compile.
type objectField struct {
	name       string
	isScript   bool
	build      func() valueGen
	shared     *gen.Shared[gen.Never, value.Value]
	scriptFn   func(round *value.OrderedObject) (value.Value, error)
}

type objectNode struct {
	order  []string
	fields map[string]*objectField
}

func (o *objectNode) Step(rng *rand.Rand) gen.State[gen.Never, value.Value] {
	return gen.CompleteState[gen.Never, value.Value](o.Complete(rng))
}

func (o *objectNode) Complete(rng *rand.Rand) value.Value {
	round := value.NewOrderedObject()
	for _, name := range o.order {
		f := o.fields[name]
		var v value.Value
		if f.isScript {
			result, err := f.scriptFn(round)
			if err != nil {
				v = value.Null()
			} else {
				v = result
			}
		} else {
			f.shared.Reset()
			f.shared.Rebind(f.build())
			v = f.shared.Complete(rng)
		}
		round.Set(name, v)
	}
	return value.Object(round)
}

func (c *Compiler) compileObject(n *content.Object, scope *Scope, addr content.Address) (func() valueGen, error) {
	fields := make(map[string]*objectField, len(n.Order))
	for _, name := range n.Order {
		fieldAddr := addr.Child(content.FieldStep(name))
		fieldNode := n.Properties[name]

		if script, ok := fieldNode.(*content.Script); ok {
			fields[name] = &objectField{name: name, isScript: true, scriptFn: compileScript(script, fieldAddr)}
			continue
		}

		build, err := c.compileNode(fieldNode, scope, fieldAddr)
		if err != nil {
			return nil, err
		}
		shared := gen.NewShared[gen.Never, value.Value](build())
		scope.register(fieldAddr.String(), shared)
		fields[name] = &objectField{name: name, build: build, shared: shared}
	}
	order := append([]string(nil), n.Order...)
	return func() valueGen { return &objectNode{order: order, fields: fields} }, nil
}
