package compiler

import (
	"math/rand"

	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/gen"
	"github.com/synthkit/synth/value"
)

// seriesState carries the running index across rounds, the same way
// uniqueState carries the dedup set: a Series node is stateful for the
// life of the whole sampling run, not reset per round.
type seriesState struct {
	n int
}

type seriesNode struct {
	state *seriesState
	node  *content.Series
}

func (s *seriesNode) Step(rng *rand.Rand) gen.State[gen.Never, value.Value] {
	return gen.CompleteState[gen.Never, value.Value](s.Complete(rng))
}

func (s *seriesNode) Complete(rng *rand.Rand) value.Value {
	idx := s.state.n
	s.state.n++
	effective := idx
	if s.node.Cycle > 0 {
		effective = idx % s.node.Cycle
	}
	return value.F64(s.node.Start + float64(effective)*s.node.Increment)
}

func (c *Compiler) compileSeries(n *content.Series) func() valueGen {
	state := &seriesState{}
	return func() valueGen { return &seriesNode{state: state, node: n} }
}
