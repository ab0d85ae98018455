package jsonschema

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/synthkit/synth/value"
)

// parseTime accepts RFC3339 and falls back to a bare date, matching the two
// shapes a hand-authored document is likely to use for Earliest/Latest.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("not a recognized timestamp: %q", s)
}

// orderedMap marshals to JSON with its keys in the given order rather than
// the sorted order encoding/json imposes on plain maps, preserving the
// OrderedObject insertion order §3 requires records to reproduce.
type orderedMap struct {
	keys   []string
	values map[string]any
}

func (m orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func toJSONValue(v value.Value) any {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		b, _ := v.Bool()
		return b
	case value.KindI64:
		n, _ := v.I64()
		return n
	case value.KindU64:
		n, _ := v.U64()
		return n
	case value.KindF64:
		f, _ := v.F64()
		return f
	case value.KindString:
		s, _ := v.String()
		return s
	case value.KindBytes:
		b, _ := v.Bytes()
		return base64.StdEncoding.EncodeToString(b)
	case value.KindDateTime:
		t, _ := v.DateTime()
		return t.Format(time.RFC3339)
	case value.KindArray:
		items, _ := v.Array()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = toJSONValue(item)
		}
		return out
	case value.KindObject:
		obj, _ := v.Object()
		keys := obj.Keys()
		m := orderedMap{keys: keys, values: make(map[string]any, len(keys))}
		for _, k := range keys {
			fv, _ := obj.Get(k)
			m.values[k] = toJSONValue(fv)
		}
		return m
	default:
		return nil
	}
}

// EncodeSample renders a sampled value as canonical JSON, preserving object
// field order. Collections of records should be wrapped in value.Array
// before calling this, matching how SampleCollection returns its results.
func EncodeSample(v value.Value) ([]byte, error) {
	return json.Marshal(toJSONValue(v))
}

// EncodeRecords is a convenience wrapper for the common case of encoding a
// whole collection's sampled records as a JSON array.
func EncodeRecords(records []value.Value) ([]byte, error) {
	return EncodeSample(value.Array(records))
}
