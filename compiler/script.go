package compiler

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/value"
)

// compileScript builds the round-local evaluation function for a Script
// node: given the fields already produced earlier in the same round (the
// round-in-progress *value.OrderedObject an Object assembles field by
// field), it evaluates Expression with those fields bound as JS globals
// and converts the result back into a value.Value.
//
// Grounded on functions/javascript/portal.go's goja usage, repurposed from
// invoking a named exported function over RPC to evaluating a bare
// expression per record.
func compileScript(node *content.Script, addr content.Address) func(round *value.OrderedObject) (value.Value, error) {
	return func(round *value.OrderedObject) (value.Value, error) {
		vm := goja.New()
		for _, key := range round.Keys() {
			v, _ := round.Get(key)
			if err := vm.Set(key, toGoValue(v)); err != nil {
				return value.Value{}, fmt.Errorf("compiler: %s: binding %q: %w", addr, key, err)
			}
		}
		result, err := vm.RunString(node.Expression)
		if err != nil {
			return value.Value{}, fmt.Errorf("compiler: %s: script error: %w", addr, err)
		}
		return fromGoValue(result.Export()), nil
	}
}

// toGoValue unwraps a value.Value into the plain Go type goja expects for
// binding into the script's scope.
func toGoValue(v value.Value) any {
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
	case value.KindDateTime:
		t, _ := v.DateTime()
		return t.Format("2006-01-02T15:04:05Z07:00")
	case value.KindArray:
		items, _ := v.Array()
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = toGoValue(it)
		}
		return out
	case value.KindObject:
		obj, _ := v.Object()
		out := make(map[string]any, obj.Len())
		for _, k := range obj.Keys() {
			fv, _ := obj.Get(k)
			out[k] = toGoValue(fv)
		}
		return out
	default:
		return nil
	}
}

// fromGoValue converts a goja export (plain Go any, after JS evaluation)
// back into value.Value. An exported int64 becomes an i64 and an exported
// float64 an f64; any other Go type is rendered as a string.
func fromGoValue(v any) value.Value {
	switch x := v.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool(x)
	case int64:
		return value.I64(x)
	case float64:
		return value.F64(x)
	case string:
		return value.String(x)
	case []any:
		items := make([]value.Value, len(x))
		for i, it := range x {
			items[i] = fromGoValue(it)
		}
		return value.Array(items)
	case map[string]any:
		obj := value.NewOrderedObject()
		for k, fv := range x {
			obj.Set(k, fromGoValue(fv))
		}
		return value.Object(obj)
	default:
		return value.String(fmt.Sprintf("%v", x))
	}
}
