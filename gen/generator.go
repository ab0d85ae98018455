// Package gen implements the lazy, composable generator algebra: a small
// set of primitives and combinators over a Generator[Y, R] interface, ported
// from the Generator/GeneratorState traits in gen/src/generator/mod.rs. A
// Generator steps forward once per call, either
// Yielding an intermediate value or Completing with a final result; callers
// drive it with an *rand.Rand they own, so generation is deterministic for
// a fixed seed and a fixed sequence of Step/Complete calls.
package gen

import "math/rand"

// Generator is the central abstraction: something that can be stepped
// forward, round by round, against caller-supplied randomness, and that can
// always be forced to a final result on demand.
//
// Y is the type yielded between rounds; R is the type produced on
// completion. Most leaf generators never yield (Y is Never); combinators
// like Repeat and Concatenate are where Y becomes meaningful.
type Generator[Y, R any] interface {
	// Step advances the generator by one round, returning either a Yielded
	// intermediate value or a Complete final result. A generator that
	// returns Complete is expected to behave the same way if stepped again
	// (combinators that need one-shot semantics wrap with Once).
	Step(rng *rand.Rand) State[Y, R]

	// Complete forces the generator directly to its final result, as if
	// Step had been called until completion. For most primitives this is
	// just "step once more"; combinators propagate it to their children.
	Complete(rng *rand.Rand) R
}

// StateKind discriminates the two channels of State.
type StateKind int

const (
	KindYielded StateKind = iota
	KindComplete
)

// State is the Go encoding of the original's GeneratorState enum. Go has no
// sum types, so State carries both fields and a Kind discriminant; only the
// field matching Kind is meaningful.
type State[Y, R any] struct {
	Kind StateKind
	Y    Y
	R    R
}

// YieldedState builds a Yielded state.
func YieldedState[Y, R any](y Y) State[Y, R] {
	return State[Y, R]{Kind: KindYielded, Y: y}
}

// CompleteState builds a Complete state.
func CompleteState[Y, R any](r R) State[Y, R] {
	return State[Y, R]{Kind: KindComplete, R: r}
}

// IsYielded reports whether s is a Yielded state.
func (s State[Y, R]) IsYielded() bool { return s.Kind == KindYielded }

// IsComplete reports whether s is a Complete state.
func (s State[Y, R]) IsComplete() bool { return s.Kind == KindComplete }
