// Package jsonschema implements the external JSON namespace format: parsing
// an authored document into a content.Namespace, and serializing sampler
// output back to canonical JSON. Kept separate from package compiler and
// package sample (§6 expansion) so an alternate authoring format could plug
// in without touching the core. Uses encoding/json only, matching the rest
// of this codebase's JSON handling — no third-party JSON library appears
// anywhere in go.mod.
package jsonschema

import (
	"encoding/json"
	"fmt"

	"github.com/synthkit/synth/content"
)

type document struct {
	Collections map[string]json.RawMessage `json:"collections"`
	Order       []string                   `json:"order"`
}

type rawNode struct {
	Type string `json:"type"`

	Frequency *float64 `json:"frequency,omitempty"`
	Constant  *bool    `json:"constant,omitempty"`

	Subtype       string          `json:"subtype,omitempty"`
	Minimum       *float64        `json:"minimum,omitempty"`
	Maximum       *float64        `json:"maximum,omitempty"`
	DefaultNumber *float64        `json:"default_number,omitempty"`
	Categorical   json.RawMessage `json:"categorical,omitempty"`

	MinLength     *int    `json:"min_length,omitempty"`
	MaxLength     *int    `json:"max_length,omitempty"`
	Pattern       string  `json:"pattern,omitempty"`
	Format        string  `json:"format,omitempty"`
	DefaultString *string `json:"default_string,omitempty"`

	Earliest   string `json:"earliest,omitempty"`
	Latest     string `json:"latest,omitempty"`
	TimeFormat string `json:"time_format,omitempty"`

	Item        json.RawMessage `json:"item,omitempty"`
	MinItems    int             `json:"min_items,omitempty"`
	MaxItems    int             `json:"max_items,omitempty"`
	UniqueItems bool            `json:"unique_items,omitempty"`

	Properties map[string]json.RawMessage `json:"properties,omitempty"`
	PropOrder  []string                   `json:"order,omitempty"`
	Required   []string                   `json:"required,omitempty"`

	Branches []json.RawMessage `json:"branches,omitempty"`
	Weights  []float64         `json:"weights,omitempty"`

	Inner       json.RawMessage `json:"inner,omitempty"`
	Probability float64         `json:"probability,omitempty"`

	Reference string `json:"reference,omitempty"`

	Start     float64 `json:"start,omitempty"`
	Increment float64 `json:"increment,omitempty"`
	Cycle     int     `json:"cycle,omitempty"`

	Tag string `json:"tag,omitempty"`

	Expression string `json:"expression,omitempty"`
}

// SchemaError reports a malformed namespace document, following the same
// kind+path+message shape as compiler.CompileError and sample.SampleError,
// keyed by a dotted document path rather than a content.Address since
// parsing happens before any node has one.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("jsonschema: %s", e.Message)
	}
	return fmt.Sprintf("jsonschema: %s: %s", e.Path, e.Message)
}

// ParseNamespace parses a namespace document into a content.Namespace.
// Both the top-level collection order and every object's field order must
// be given explicitly as "order" arrays: JSON object key order is not
// preserved by encoding/json, and §3 requires declaration order to be
// reproducible.
func ParseNamespace(data []byte) (*content.Namespace, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{Message: err.Error()}
	}
	if len(doc.Order) == 0 {
		return nil, &SchemaError{Message: "document is missing top-level \"order\""}
	}
	ns := content.NewNamespace()
	for _, name := range doc.Order {
		raw, ok := doc.Collections[name]
		if !ok {
			return nil, &SchemaError{Path: name, Message: "\"order\" names this collection but \"collections\" has no entry for it"}
		}
		node, err := parseNode(raw)
		if err != nil {
			return nil, &SchemaError{Path: name, Message: err.Error()}
		}
		ns.Add(name, node)
	}
	return ns, nil
}

func parseNode(raw json.RawMessage) (content.Node, error) {
	var rn rawNode
	if err := json.Unmarshal(raw, &rn); err != nil {
		return nil, err
	}
	switch content.Kind(rn.Type) {
	case content.KindNull:
		return &content.Null{}, nil

	case content.KindBool:
		freq := 0.5
		if rn.Frequency != nil {
			freq = *rn.Frequency
		}
		n := content.NewBool(freq)
		if rn.Constant != nil {
			n = content.NewConstantBool(*rn.Constant)
		}
		return n, nil

	case content.KindNumber:
		subtype := content.SubtypeFloat
		switch rn.Subtype {
		case "i64":
			subtype = content.SubtypeI64
		case "u64":
			subtype = content.SubtypeU64
		}
		var categorical []float64
		if len(rn.Categorical) > 0 {
			if err := json.Unmarshal(rn.Categorical, &categorical); err != nil {
				return nil, err
			}
		}
		return content.NewNumber(content.NumberConfig{
			Subtype: subtype, Minimum: rn.Minimum, Maximum: rn.Maximum,
			DefaultVal: rn.DefaultNumber, Categorical: categorical,
		}), nil

	case content.KindString:
		var categorical []string
		if len(rn.Categorical) > 0 {
			if err := json.Unmarshal(rn.Categorical, &categorical); err != nil {
				return nil, err
			}
		}
		return content.NewString(content.StringConfig{
			MinLength: rn.MinLength, MaxLength: rn.MaxLength, Pattern: rn.Pattern,
			Format: rn.Format, Categorical: categorical, DefaultVal: rn.DefaultString,
		}), nil

	case content.KindDateTime:
		earliest, err := parseTime(rn.Earliest)
		if err != nil {
			return nil, fmt.Errorf("earliest: %w", err)
		}
		latest, err := parseTime(rn.Latest)
		if err != nil {
			return nil, fmt.Errorf("latest: %w", err)
		}
		return content.NewDateTime(content.DateTimeConfig{Earliest: earliest, Latest: latest, Format: rn.TimeFormat}), nil

	case content.KindArray:
		item, err := parseNode(rn.Item)
		if err != nil {
			return nil, fmt.Errorf("item: %w", err)
		}
		return content.NewArray(content.ArrayConfig{
			Item: item, MinItems: rn.MinItems, MaxItems: rn.MaxItems, UniqueItems: rn.UniqueItems,
		}), nil

	case content.KindObject:
		if len(rn.PropOrder) == 0 {
			return nil, fmt.Errorf("object is missing \"order\"")
		}
		props := make(map[string]content.Node, len(rn.PropOrder))
		for _, name := range rn.PropOrder {
			raw, ok := rn.Properties[name]
			if !ok {
				return nil, fmt.Errorf("\"order\" names property %q but \"properties\" has no entry for it", name)
			}
			node, err := parseNode(raw)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			props[name] = node
		}
		return content.NewObject(content.ObjectConfig{
			Properties: props, Order: append([]string(nil), rn.PropOrder...), Required: rn.Required,
		}), nil

	case content.KindOneOf:
		branches := make([]content.Node, len(rn.Branches))
		for i, raw := range rn.Branches {
			node, err := parseNode(raw)
			if err != nil {
				return nil, fmt.Errorf("branch %d: %w", i, err)
			}
			branches[i] = node
		}
		return content.NewOneOf(branches, rn.Weights), nil

	case content.KindOptional:
		inner, err := parseNode(rn.Inner)
		if err != nil {
			return nil, fmt.Errorf("inner: %w", err)
		}
		return content.NewOptional(inner, rn.Probability), nil

	case content.KindSameAs:
		return content.NewSameAs(rn.Reference), nil

	case content.KindUnique:
		inner, err := parseNode(rn.Inner)
		if err != nil {
			return nil, fmt.Errorf("inner: %w", err)
		}
		return content.NewUnique(inner), nil

	case content.KindSeries:
		return content.NewSeries(rn.Start, rn.Increment, rn.Cycle), nil

	case content.KindDatasource:
		return content.NewDatasource(rn.Tag), nil

	case content.KindScript:
		return content.NewScript(rn.Expression), nil

	default:
		return nil, fmt.Errorf("unknown content type %q", rn.Type)
	}
}
