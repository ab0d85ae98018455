// Package compiler translates a content.Namespace into a generator graph:
// one factory function per collection that, each time it is called,
// produces a fresh gen.Generator ready to be driven to completion for one
// record. The translation follows the Compile/Compiler trait split from
// original_source/core/src/schema/content/bool.rs — each content kind owns
// a dedicated compileX function dispatched from a switch, the Go analogue
// of Rust's per-type trait impl.
package compiler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/gen"
	"github.com/synthkit/synth/value"
)

// Options controls compiler defaults not carried by the schema itself.
// Named, independently overridable fields following a GeneratorConfig
// pattern (generator.go's DefaultGeneratorConfig).
type Options struct {
	// Seed drives both the faker registry and, best-effort, reggen's
	// process-global random source (see compiler/pattern.go). Zero means
	// "seed from the wall clock".
	Seed int64

	// DefaultMinItems/DefaultMaxItems apply to an Array node that leaves
	// MinItems/MaxItems at their zero value.
	DefaultMinItems int
	DefaultMaxItems int

	// UniqueRetryBudget bounds how many times Unique (and an Array with
	// UniqueItems set) will redraw on a collision before giving up and
	// accepting a duplicate. Resolves §9 open question (c).
	UniqueRetryBudget int

	Logger *logrus.Logger
}

// DefaultOptions returns sensible defaults for every field Options names.
func DefaultOptions() Options {
	return Options{
		DefaultMinItems:   0,
		DefaultMaxItems:   5,
		UniqueRetryBudget: 1000,
		Logger:            logrus.StandardLogger(),
	}
}

// Compiler holds everything shared across a single namespace compilation:
// resolved options, the seeded faker registry, and a logger for
// compile-time diagnostics (§4.2 expansion: warnings/errors are logged in
// addition to being returned).
type Compiler struct {
	Options Options
	faker   *Faker
	log     *logrus.Logger
}

// New builds a Compiler from opts, filling in zero-valued fields from
// DefaultOptions.
func New(opts Options) *Compiler {
	defaults := DefaultOptions()
	if opts.DefaultMinItems == 0 && opts.DefaultMaxItems == 0 {
		opts.DefaultMinItems, opts.DefaultMaxItems = defaults.DefaultMinItems, defaults.DefaultMaxItems
	}
	if opts.UniqueRetryBudget == 0 {
		opts.UniqueRetryBudget = defaults.UniqueRetryBudget
	}
	if opts.Logger == nil {
		opts.Logger = defaults.Logger
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seedPatternRNG(seed)
	return &Compiler{Options: opts, faker: NewFaker(seed), log: opts.Logger}
}

// seedPatternRNG seeds the process-global math/rand source reggen draws
// from. See compiler/pattern.go for why this is necessary and what it does
// not guarantee.
func seedPatternRNG(seed int64) {
	rand.Seed(seed) //nolint:staticcheck // reggen has no seeded-RNG entry point
}

// Compiled is the output of CompileNamespace: one factory per collection,
// in the declaration order the sampler falls back to.
type Compiled struct {
	Collections map[string]func() valueGen
	Order       []string
}

// CompileNamespace compiles every collection in ns. A cycle in same_as
// references anywhere in the namespace fails the whole compile, per §4.2's
// cycle-detection rule.
func (c *Compiler) CompileNamespace(ns *content.Namespace) (*Compiled, error) {
	if _, err := ns.TopologicalOrder(); err != nil {
		c.log.WithError(err).Error("compiler: namespace has a same_as cycle")
		return nil, fmt.Errorf("compiler: %w", err)
	}

	out := &Compiled{Collections: make(map[string]func() valueGen), Order: append([]string(nil), ns.Order...)}
	for _, name := range ns.Order {
		scope := newScope(name)
		build, err := c.compileNode(ns.Collections[name], scope, content.NewAddress(name))
		if err != nil {
			c.log.WithError(err).WithField("collection", name).Warn("compiler: collection failed to compile")
			return nil, err
		}
		out.Collections[name] = build
	}
	return out, nil
}

// compileNode dispatches on concrete node kind. It returns a factory:
// calling it builds one fresh generator instance, ready to be completed
// for a single round.
func (c *Compiler) compileNode(node content.Node, scope *Scope, addr content.Address) (func() valueGen, error) {
	switch n := node.(type) {
	case *content.Null:
		return func() valueGen { return gen.Complete[value.Value]{Value: value.Null()} }, nil
	case *content.Bool:
		return c.compileBool(n), nil
	case *content.Number:
		return c.compileNumber(n, addr)
	case *content.String:
		return c.compileString(n, addr)
	case *content.DateTime:
		return c.compileDateTime(n), nil
	case *content.Array:
		return c.compileArray(n, scope, addr)
	case *content.Object:
		return c.compileObject(n, scope, addr)
	case *content.OneOf:
		return c.compileOneOf(n, scope, addr)
	case *content.Optional:
		return c.compileOptional(n, scope, addr)
	case *content.SameAs:
		return c.compileSameAs(n, scope, addr)
	case *content.Unique:
		return c.compileUnique(n, scope, addr)
	case *content.Series:
		return c.compileSeries(n), nil
	case *content.Datasource:
		return c.compileDatasource(n, addr)
	case *content.Script:
		return nil, newError(addr, "script nodes may only appear as object fields")
	default:
		return nil, newError(addr, "unknown content kind %T", node)
	}
}

func (c *Compiler) compileBool(n *content.Bool) func() valueGen {
	return func() valueGen {
		return gen.Random[value.Value]{Fn: func(rng *rand.Rand) value.Value {
			if n.Constant != nil {
				return value.Bool(*n.Constant)
			}
			return value.Bool(rng.Float64() < n.Frequency)
		}}
	}
}

func (c *Compiler) compileNumber(n *content.Number, addr content.Address) (func() valueGen, error) {
	if len(n.Categorical()) == 0 && n.Minimum() != nil && n.Maximum() != nil && *n.Minimum() > *n.Maximum() {
		return nil, newError(addr, "minimum %v exceeds maximum %v", *n.Minimum(), *n.Maximum())
	}
	return func() valueGen {
		return gen.Random[value.Value]{Fn: func(rng *rand.Rand) value.Value {
			if cat := n.Categorical(); len(cat) > 0 {
				return numberValue(n.Subtype(), cat[rng.Intn(len(cat))])
			}
			lo, hi := 0.0, 1.0
			if n.Minimum() != nil {
				lo = *n.Minimum()
			}
			if n.Maximum() != nil {
				hi = *n.Maximum()
			} else if n.Minimum() != nil {
				hi = lo + 1
			}
			draw := lo
			if hi > lo {
				draw = lo + rng.Float64()*(hi-lo)
			}
			return numberValue(n.Subtype(), draw)
		}}
	}, nil
}

func numberValue(subtype content.Subtype, f float64) value.Value {
	switch subtype {
	case content.SubtypeI64:
		return value.I64(int64(f))
	case content.SubtypeU64:
		if f < 0 {
			f = -f
		}
		return value.U64(uint64(f))
	default:
		return value.F64(f)
	}
}

func (c *Compiler) compileString(n *content.String, addr content.Address) (func() valueGen, error) {
	if n.Format() != "" {
		if !KnownTag(n.Format()) {
			return nil, newError(addr, "unknown string format %q", n.Format())
		}
		format := n.Format()
		return func() valueGen {
			return gen.Dummy[value.Value]{Fn: func(rng *rand.Rand) value.Value {
				s, err := c.faker.Draw(format)
				if err != nil {
					return value.String("")
				}
				return value.String(s)
			}}
		}, nil
	}
	if n.Pattern() != "" && len(n.Categorical()) == 0 {
		draw, err := patternGenerator(n.Pattern())
		if err != nil {
			return nil, newError(addr, "%v", err)
		}
		return func() valueGen {
			return gen.Random[value.Value]{Fn: func(rng *rand.Rand) value.Value {
				s, err := draw(rng)
				if err != nil {
					return value.String("")
				}
				return value.String(s)
			}}
		}, nil
	}
	minLen, maxLen := 1, 16
	if n.MinLength() != nil {
		minLen = *n.MinLength()
	}
	if n.MaxLength() != nil {
		maxLen = *n.MaxLength()
	}
	categorical := n.Categorical()
	return func() valueGen {
		return gen.Random[value.Value]{Fn: func(rng *rand.Rand) value.Value {
			if len(categorical) > 0 {
				return value.String(categorical[rng.Intn(len(categorical))])
			}
			length := minLen
			if maxLen > minLen {
				length = minLen + rng.Intn(maxLen-minLen+1)
			}
			return value.String(randomString(rng, length))
		}}
	}, nil
}

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomString(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = asciiLetters[rng.Intn(len(asciiLetters))]
	}
	return string(b)
}

func (c *Compiler) compileDateTime(n *content.DateTime) func() valueGen {
	earliest, latest := n.Earliest(), n.Latest()
	return func() valueGen {
		return gen.Random[value.Value]{Fn: func(rng *rand.Rand) value.Value {
			span := latest.Sub(earliest)
			if span <= 0 {
				return value.DateTime(earliest)
			}
			offset := time.Duration(rng.Int63n(int64(span)))
			return value.DateTime(earliest.Add(offset))
		}}
	}
}

func (c *Compiler) compileDatasource(n *content.Datasource, addr content.Address) (func() valueGen, error) {
	if !KnownTag(n.Tag) {
		return nil, newError(addr, "unknown faker tag %q", n.Tag)
	}
	return func() valueGen {
		return gen.Dummy[value.Value]{Fn: func(rng *rand.Rand) value.Value {
			s, err := c.faker.Draw(n.Tag)
			if err != nil {
				return value.String("")
			}
			return value.String(s)
		}}
	}, nil
}
