package gen

import "math/rand"

// Shared is the single-writer/many-reader cell behind the same_as content
// kind (§4.4 of the data model). One node in the compiled
// graph — the writer — steps the wrapped generator as normal; any number of
// other nodes — observers — call Read to see the value the writer produced
// this round, without stepping the generator themselves.
//
// This is safe without locking because the compiler's topological ordering
// guarantees the writer is always stepped before any observer reads within
// the same round (§5: single-threaded, synchronous execution). Reset must
// be called between rounds (the compiler's object node calls Reset and
// Rebind on each field's cell every round, just before completing it).
type Shared[Y, R any] struct {
	inner    Generator[Y, R]
	hasValue bool
	value    R
}

func NewShared[Y, R any](inner Generator[Y, R]) *Shared[Y, R] {
	return &Shared[Y, R]{inner: inner}
}

// Step drives the wrapped generator; call this only from the writer node.
func (s *Shared[Y, R]) Step(rng *rand.Rand) State[Y, R] {
	st := s.inner.Step(rng)
	if st.IsComplete() {
		s.hasValue = true
		s.value = st.R
	}
	return st
}

// Complete drives the wrapped generator to completion; call this only from
// the writer node.
func (s *Shared[Y, R]) Complete(rng *rand.Rand) R {
	r := s.inner.Complete(rng)
	s.hasValue = true
	s.value = r
	return r
}

// Read returns the writer's most recently completed value for this round,
// and whether the writer has completed yet. An observer stepped out of
// order (before the writer) sees hasValue == false, which the compiler
// treats as a cycle/ordering error at compile time rather than a runtime
// condition callers need to handle.
func (s *Shared[Y, R]) Read() (R, bool) {
	return s.value, s.hasValue
}

// Reset clears the cached value between rounds.
func (s *Shared[Y, R]) Reset() {
	s.hasValue = false
	var zero R
	s.value = zero
}

// Rebind swaps the wrapped generator for a fresh instance. The compiler
// calls this once per round so a single Shared identity (and every SameAs
// reference holding a pointer to it) can serve many rounds even though the
// underlying per-round generator is rebuilt from scratch each time.
func (s *Shared[Y, R]) Rebind(inner Generator[Y, R]) {
	s.inner = inner
}
