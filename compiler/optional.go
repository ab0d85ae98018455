package compiler

import (
	"math/rand"

	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/gen"
	"github.com/synthkit/synth/value"
)

// optionalNode draws its own presence Bernoulli rather than reusing
// gen.Maybe, whose coin is pinned at a fixed 50/50 by design (see
// gen.Maybe's doc comment and §9 open question (a)); the schema's
// Probability field needs an independent bias.
type optionalNode struct {
	innerBuild  func() valueGen
	probability float64
}

func (o *optionalNode) Step(rng *rand.Rand) gen.State[gen.Never, value.Value] {
	return gen.CompleteState[gen.Never, value.Value](o.Complete(rng))
}

func (o *optionalNode) Complete(rng *rand.Rand) value.Value {
	present := gen.Random[bool]{Fn: func(rng *rand.Rand) bool {
		return rng.Float64() < o.probability
	}}.Complete(rng)
	if !present {
		return value.Null()
	}
	return o.innerBuild().Complete(rng)
}

func (c *Compiler) compileOptional(n *content.Optional, scope *Scope, addr content.Address) (func() valueGen, error) {
	innerBuild, err := c.compileNode(n.Inner, scope, addr)
	if err != nil {
		return nil, err
	}
	probability := n.Probability
	return func() valueGen {
		return &optionalNode{innerBuild: innerBuild, probability: probability}
	}, nil
}
