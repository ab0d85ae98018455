package compiler

import (
	"math/rand"

	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/gen"
	"github.com/synthkit/synth/value"
)

// uniqueState persists across every round a Unique node participates in
// (the compiler captures one *uniqueState per compiled node, not per
// round), since uniqueness is a whole-run guarantee, not a per-round one.
type uniqueState struct {
	seen []value.Value
}

type uniqueNode struct {
	state       *uniqueState
	innerBuild  func() valueGen
	retryBudget int
}

func (u *uniqueNode) Step(rng *rand.Rand) gen.State[gen.Never, value.Value] {
	return gen.CompleteState[gen.Never, value.Value](u.Complete(rng))
}

func (u *uniqueNode) Complete(rng *rand.Rand) value.Value {
	var candidate value.Value
	for attempt := 0; attempt < u.retryBudget; attempt++ {
		candidate = u.innerBuild().Complete(rng)
		if !containsValue(u.state.seen, candidate) {
			break
		}
	}
	u.state.seen = append(u.state.seen, candidate)
	return candidate
}

func (c *Compiler) compileUnique(n *content.Unique, scope *Scope, addr content.Address) (func() valueGen, error) {
	if card := cardinality(n.Inner); card >= 0 && card < 2 {
		return nil, newError(addr, "unique wraps a domain of only %d distinct value(s); it can never stay unique across more than one draw", card)
	}
	innerBuild, err := c.compileNode(n.Inner, scope, addr)
	if err != nil {
		return nil, err
	}
	state := &uniqueState{}
	retryBudget := c.Options.UniqueRetryBudget
	return func() valueGen {
		return &uniqueNode{state: state, innerBuild: innerBuild, retryBudget: retryBudget}
	}, nil
}
