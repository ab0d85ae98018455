package compiler

import (
	"github.com/synthkit/synth/gen"
	"github.com/synthkit/synth/value"
)

// valueGen is the generator shape every compiled content node produces: it
// never yields an intermediate value (content compilation surfaces only
// Complete, matching the original sampler's sole use of `.complete()` on
// the top-level graph — see original_source/synth/src/sampler.rs, which
// never calls `.step()`), and always completes with a value.Value.
// Intra-round laziness, where it matters, lives inside the gen package's
// own combinators (Repeat, OneOf), which compileX functions call directly.
type valueGen = gen.Generator[gen.Never, value.Value]

// Scope tracks the addresses a single collection has compiled so far, so a
// same_as field can resolve a reference to an already-compiled sibling.
// One Scope is used per top-level collection: SameAs cannot cross
// collection boundaries (compileSameAs rejects such a reference) — producers must appear earlier in
// declaration order than their observers within the same collection,
// mirroring §4.4's producer-before-observer contract.
type Scope struct {
	collection string
	shared     map[string]*gen.Shared[gen.Never, value.Value]
}

func newScope(collection string) *Scope {
	return &Scope{collection: collection, shared: make(map[string]*gen.Shared[gen.Never, value.Value])}
}

func (s *Scope) register(addr string, shared *gen.Shared[gen.Never, value.Value]) {
	s.shared[addr] = shared
}

func (s *Scope) lookup(addr string) (*gen.Shared[gen.Never, value.Value], bool) {
	sh, ok := s.shared[addr]
	return sh, ok
}
