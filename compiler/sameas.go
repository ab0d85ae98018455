package compiler

import (
	"math/rand"

	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/gen"
	"github.com/synthkit/synth/value"
)

type sameAsNode struct {
	target *gen.Shared[gen.Never, value.Value]
}

func (s *sameAsNode) Step(rng *rand.Rand) gen.State[gen.Never, value.Value] {
	return gen.CompleteState[gen.Never, value.Value](s.Complete(rng))
}

func (s *sameAsNode) Complete(rng *rand.Rand) value.Value {
	v, ok := s.target.Read()
	if !ok {
		return value.Null()
	}
	return v
}

func (c *Compiler) compileSameAs(n *content.SameAs, scope *Scope, addr content.Address) (func() valueGen, error) {
	ref, err := content.ParsePath(n.Reference)
	if err != nil {
		return nil, newError(addr, "%v", err)
	}
	if ref.Collection != scope.collection {
		return nil, newError(addr, "same_as reference %q crosses collection boundary (from %q); cross-collection references are not supported", n.Reference, scope.collection)
	}
	shared, ok := scope.lookup(ref.String())
	if !ok {
		return nil, newError(addr, "same_as reference %q does not name a field declared earlier in this collection", n.Reference)
	}
	return func() valueGen { return &sameAsNode{target: shared} }, nil
}
