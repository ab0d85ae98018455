package jsonschema

import (
	"strings"
	"testing"

	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/value"
)

func TestParseNamespaceBuildsObjectWithOrderedFields(t *testing.T) {
	doc := `{
		"order": ["users"],
		"collections": {
			"users": {
				"type": "object",
				"order": ["id", "name", "email"],
				"required": ["id"],
				"properties": {
					"id": {"type": "series", "start": 1, "increment": 1},
					"name": {"type": "datasource", "tag": "person.full_name"},
					"email": {"type": "same_as", "reference": "users.name"}
				}
			}
		}
	}`
	ns, err := ParseNamespace([]byte(doc))
	if err != nil {
		t.Fatalf("ParseNamespace: %v", err)
	}
	if len(ns.Order) != 1 || ns.Order[0] != "users" {
		t.Fatalf("unexpected namespace order: %v", ns.Order)
	}
	obj, ok := ns.Collections["users"].(*content.Object)
	if !ok {
		t.Fatalf("users did not parse as Object, got %T", ns.Collections["users"])
	}
	if got := obj.Order; len(got) != 3 || got[0] != "id" || got[1] != "name" || got[2] != "email" {
		t.Fatalf("unexpected field order: %v", got)
	}
	if _, ok := obj.Properties["email"].(*content.SameAs); !ok {
		t.Fatalf("email did not parse as SameAs, got %T", obj.Properties["email"])
	}
}

func TestParseNamespaceRejectsMissingTopLevelOrder(t *testing.T) {
	doc := `{"collections": {"users": {"type": "null"}}}`
	if _, err := ParseNamespace([]byte(doc)); err == nil {
		t.Fatal("expected an error for a document missing \"order\"")
	}
}

func TestParseNamespaceRejectsObjectMissingOrder(t *testing.T) {
	doc := `{
		"order": ["users"],
		"collections": {
			"users": {"type": "object", "properties": {"id": {"type": "null"}}}
		}
	}`
	if _, err := ParseNamespace([]byte(doc)); err == nil {
		t.Fatal("expected an error for an object missing its own \"order\"")
	}
}

func TestParseNamespaceArrayAndNumber(t *testing.T) {
	doc := `{
		"order": ["scores"],
		"collections": {
			"scores": {
				"type": "array",
				"min_items": 2,
				"max_items": 4,
				"item": {"type": "number", "subtype": "i64", "minimum": 0, "maximum": 10}
			}
		}
	}`
	ns, err := ParseNamespace([]byte(doc))
	if err != nil {
		t.Fatalf("ParseNamespace: %v", err)
	}
	arr, ok := ns.Collections["scores"].(*content.Array)
	if !ok {
		t.Fatalf("scores did not parse as Array, got %T", ns.Collections["scores"])
	}
	if arr.MinItems() != 2 || arr.MaxItems() != 4 {
		t.Fatalf("unexpected bounds: min=%d max=%d", arr.MinItems(), arr.MaxItems())
	}
	num, ok := arr.Item.(*content.Number)
	if !ok {
		t.Fatalf("item did not parse as Number, got %T", arr.Item)
	}
	if num.Subtype() != content.SubtypeI64 {
		t.Fatalf("expected i64 subtype, got %v", num.Subtype())
	}
}

func TestParseNamespaceUnknownType(t *testing.T) {
	doc := `{"order": ["x"], "collections": {"x": {"type": "nonsense"}}}`
	_, err := ParseNamespace([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "unknown content type") {
		t.Fatalf("expected unknown content type error, got %v", err)
	}
}

func TestEncodeSamplePreservesObjectFieldOrder(t *testing.T) {
	obj := value.NewOrderedObject()
	obj.Set("z", value.String("last"))
	obj.Set("a", value.String("first"))
	out, err := EncodeSample(value.Object(obj))
	if err != nil {
		t.Fatalf("EncodeSample: %v", err)
	}
	want := `{"z":"last","a":"first"}`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestEncodeRecordsArray(t *testing.T) {
	out, err := EncodeRecords([]value.Value{value.I64(1), value.I64(2), value.Null()})
	if err != nil {
		t.Fatalf("EncodeRecords: %v", err)
	}
	if string(out) != `[1,2,null]` {
		t.Fatalf("got %s", out)
	}
}
