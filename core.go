package synth

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/synthkit/synth/compiler"
	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/jsonschema"
	"github.com/synthkit/synth/sample"
	"github.com/synthkit/synth/value"
)

// Compile translates a namespace document into a ready-to-sample generator
// graph. A same_as cycle anywhere in the namespace fails the whole compile.
func Compile(ns *content.Namespace, opts compiler.Options) (*compiler.Compiled, error) {
	return compiler.New(opts).CompileNamespace(ns)
}

// Sample drives a compiled namespace to the requested per-collection record
// counts, in same_as dependency order, and reports the order it actually
// sampled in.
func Sample(ns *content.Namespace, compiled *compiler.Compiled, targets map[string]int, seed int64, log *logrus.Logger) (map[string][]value.Value, []string, error) {
	return sample.New(ns, compiled, log).SampleNamespace(targets, seed)
}

// SampleToJSON is the common end-to-end path: compile, sample, and render
// the result as one JSON object keyed by collection name, each value a JSON
// array of that collection's records.
func SampleToJSON(ns *content.Namespace, opts compiler.Options, targets map[string]int, seed int64) ([]byte, error) {
	compiled, err := Compile(ns, opts)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}
	records, order, err := Sample(ns, compiled, targets, seed, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}
	out := value.NewOrderedObject()
	for _, name := range order {
		out.Set(name, value.Array(records[name]))
	}
	data, err := jsonschema.EncodeSample(value.Object(out))
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}
	return data, nil
}

// LoadNamespace parses a JSON namespace document (§6's external format)
// into a content.Namespace ready for Compile.
func LoadNamespace(data []byte) (*content.Namespace, error) {
	return jsonschema.ParseNamespace(data)
}

// The New* functions below are thin pass-throughs to package content,
// giving callers who would rather build a namespace programmatically than
// author JSON the same fluent feel as package-level schema constructors,
// without a separate builder type to keep in sync with content's node
// structs.

func NewNamespace() *content.Namespace { return content.NewNamespace() }

func NewNull() *content.Null { return &content.Null{} }

func NewBool(frequency float64) *content.Bool { return content.NewBool(frequency) }

func NewConstantBool(value bool) *content.Bool { return content.NewConstantBool(value) }

func NewNumber(config content.NumberConfig) *content.Number { return content.NewNumber(config) }

func NewString(config content.StringConfig) *content.String { return content.NewString(config) }

func NewDateTime(config content.DateTimeConfig) *content.DateTime {
	return content.NewDateTime(config)
}

func NewArray(config content.ArrayConfig) *content.Array { return content.NewArray(config) }

func NewObject(config content.ObjectConfig) *content.Object { return content.NewObject(config) }

func NewOneOf(branches []content.Node, weights []float64) *content.OneOf {
	return content.NewOneOf(branches, weights)
}

func NewOptional(inner content.Node, probability float64) *content.Optional {
	return content.NewOptional(inner, probability)
}

func NewSameAs(reference string) *content.SameAs { return content.NewSameAs(reference) }

func NewUnique(inner content.Node) *content.Unique { return content.NewUnique(inner) }

func NewSeries(start, increment float64, cycle int) *content.Series {
	return content.NewSeries(start, increment, cycle)
}

func NewDatasource(tag string) *content.Datasource { return content.NewDatasource(tag) }

func NewScript(expression string) *content.Script { return content.NewScript(expression) }
