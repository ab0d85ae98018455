package compiler

import "github.com/synthkit/synth/content"

// unboundedCardinality marks a domain this package won't try to enumerate:
// continuous ranges, patterns, faker tokens, and anything with side
// effects. cardinality only ever reports a bound when it can prove one, so
// the feasibility checks in compileArray and compileUnique reject a
// namespace only when it is provably too small, never merely suspicious.
const unboundedCardinality = -1

// cardinality returns an upper bound on the number of distinct values node
// can produce, or unboundedCardinality when no such bound can be proven
// from the schema alone. Used at compile time to catch a unique constraint
// that can never be satisfied, turning it into a fatal CompileError instead
// of a silent wrong-output path at sample time.
func cardinality(node content.Node) int {
	switch n := node.(type) {
	case *content.Null:
		return 1

	case *content.Bool:
		if n.Constant != nil {
			return 1
		}
		return 2

	case *content.Number:
		if cat := n.Categorical(); len(cat) > 0 {
			return len(cat)
		}
		if n.Subtype() == content.SubtypeFloat {
			return unboundedCardinality
		}
		if n.Minimum() == nil || n.Maximum() == nil {
			return unboundedCardinality
		}
		span := *n.Maximum() - *n.Minimum()
		if span < 0 || span > 1<<30 {
			return unboundedCardinality
		}
		return int(span) + 1

	case *content.String:
		if cat := n.Categorical(); len(cat) > 0 && n.Format() == "" {
			return len(cat)
		}
		return unboundedCardinality

	case *content.OneOf:
		total := 0
		for _, branch := range n.Branches {
			c := cardinality(branch)
			if c < 0 {
				return unboundedCardinality
			}
			total += c
		}
		return total

	case *content.Optional:
		c := cardinality(n.Inner)
		if c < 0 {
			return unboundedCardinality
		}
		return c + 1 // absent counts as its own outcome

	default:
		// DateTime, Array, Object, SameAs, Unique, Series, Datasource,
		// Script: either combinatorial or not enumerable from the schema
		// alone.
		return unboundedCardinality
	}
}
