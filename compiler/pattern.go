package compiler

import (
	"fmt"
	"math/rand"

	"github.com/lucasjones/reggen"
)

// patternGenerator compiles a raw regular expression into a draw function.
// Grounded on other_examples/bff6c61b_sarathsp06-schemagen's
// generateStringFromPattern, which calls reggen.NewGenerator(pattern) once
// and reuses the returned *reggen.Generator across draws.
//
// reggen draws from Go's package-level math/rand source rather than an
// caller-supplied *rand.Rand, so pattern-constrained strings are only as
// deterministic as a process-wide rand.Seed call makes them — see
// seedPatternRNG, called once per Compiler construction. The package doc
// of synth (doc.go) names this as an exception to seeded determinism.
func patternGenerator(pattern string) (func(rng *rand.Rand) (string, error), error) {
	g, err := reggen.NewGenerator(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiler: invalid pattern %q: %w", pattern, err)
	}
	return func(rng *rand.Rand) (string, error) {
		return g.Generate(10), nil
	}, nil
}
