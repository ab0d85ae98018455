package compiler

import (
	"math/rand"

	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/gen"
	"github.com/synthkit/synth/value"
)

type arrayNode struct {
	itemBuild   func() valueGen
	min, max    int
	unique      bool
	retryBudget int
}

func (a *arrayNode) Step(rng *rand.Rand) gen.State[gen.Never, value.Value] {
	return gen.CompleteState[gen.Never, value.Value](a.Complete(rng))
}

func (a *arrayNode) Complete(rng *rand.Rand) value.Value {
	count := func(rng *rand.Rand) int {
		if a.max > a.min {
			return a.min + rng.Intn(a.max-a.min+1)
		}
		return a.min
	}

	if !a.unique {
		repeat := gen.NewRepeat[gen.Never, value.Value](a.itemBuild, count)
		return value.Array(repeat.Complete(rng))
	}

	n := count(rng)
	items := make([]value.Value, 0, n)
	for i := 0; i < n; i++ {
		var candidate value.Value
		for attempt := 0; attempt < a.retryBudget; attempt++ {
			candidate = a.itemBuild().Complete(rng)
			if !containsValue(items, candidate) {
				break
			}
		}
		items = append(items, candidate)
	}
	return value.Array(items)
}

func containsValue(items []value.Value, v value.Value) bool {
	for _, it := range items {
		if value.Equal(it, v) {
			return true
		}
	}
	return false
}

func (c *Compiler) compileArray(n *content.Array, scope *Scope, addr content.Address) (func() valueGen, error) {
	itemBuild, err := c.compileNode(n.Item, scope, addr.Child(content.IndexStep(0)))
	if err != nil {
		return nil, err
	}
	minItems, maxItems := n.MinItems(), n.MaxItems()
	if minItems == 0 && maxItems == 0 {
		minItems, maxItems = c.Options.DefaultMinItems, c.Options.DefaultMaxItems
	}
	if minItems > maxItems {
		return nil, newError(addr, "min_items %d exceeds max_items %d", minItems, maxItems)
	}
	if n.UniqueItems() {
		if card := cardinality(n.Item); card >= 0 && card < maxItems {
			return nil, newError(addr, "unique array needs up to %d distinct items but its item domain has only %d", maxItems, card)
		}
	}
	retryBudget := c.Options.UniqueRetryBudget
	return func() valueGen {
		return &arrayNode{itemBuild: itemBuild, min: minItems, max: maxItems, unique: n.UniqueItems(), retryBudget: retryBudget}
	}, nil
}
