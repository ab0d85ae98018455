// Package synth generates structured sample data from a declarative schema.
//
// Key features:
//   - A small generator algebra (package gen) that composes lazily without
//     building intermediate collections
//   - A content-node AST (package content) covering scalars, containers,
//     cross-field references, uniqueness, counters, faker draws, and
//     per-record scripted fields
//   - A compiler (package compiler) that turns a namespace of content nodes
//     into a generator graph, validating bounds and references up front
//   - A sampler driver (package sample) that runs the graph to a target
//     record count per collection, honoring same_as dependency order
//   - A JSON namespace format (package jsonschema) for authoring schemas
//     without writing Go
//
// Usage:
//
//	ns, err := synth.LoadNamespace(data)
//	if err != nil {
//		// handle a malformed document
//	}
//	out, err := synth.SampleToJSON(ns, compiler.DefaultOptions(), map[string]int{"users": 100}, 42)
//
// Sampling the same namespace with the same seed and the same non-zero
// compiler.Options.Seed produces the same output. Numeric, boolean, plain
// string, date-time and structural draws come from a single seeded
// *rand.Rand threaded through Complete. Faker draws (datasource nodes and
// string formats) come from a gofakeit instance seeded from Options.Seed;
// a zero Seed, as in DefaultOptions, is replaced by the wall clock.
// Pattern-constrained strings are a further exception — see
// compiler/pattern.go.
package synth
