package compiler

import (
	"math/rand"

	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/gen"
	"github.com/synthkit/synth/value"
)

type oneOfNode struct {
	picker *gen.OneOf[gen.Never, value.Value]
}

func (o *oneOfNode) Step(rng *rand.Rand) gen.State[gen.Never, value.Value] {
	return gen.CompleteState[gen.Never, value.Value](o.Complete(rng))
}

func (o *oneOfNode) Complete(rng *rand.Rand) value.Value {
	return o.picker.Complete(rng)
}

func (c *Compiler) compileOneOf(n *content.OneOf, scope *Scope, addr content.Address) (func() valueGen, error) {
	builds := make([]func() valueGen, len(n.Branches))
	for i, branch := range n.Branches {
		build, err := c.compileNode(branch, scope, addr.Child(content.IndexStep(i)))
		if err != nil {
			return nil, err
		}
		builds[i] = build
	}
	weights := n.Weights
	if len(weights) == 0 {
		weights = make([]float64, len(builds))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(builds) {
		return nil, newError(addr, "one_of has %d branches but %d weights", len(builds), len(weights))
	}
	return func() valueGen {
		branches := make([]gen.Generator[gen.Never, value.Value], len(builds))
		for i, b := range builds {
			branches[i] = b()
		}
		return &oneOfNode{picker: gen.NewOneOf[gen.Never, value.Value](weights, branches...)}
	}, nil
}
