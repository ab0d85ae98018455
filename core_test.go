package synth

import (
	"testing"

	"github.com/synthkit/synth/compiler"
	"github.com/synthkit/synth/content"
)

func exampleNamespace() *content.Namespace {
	ns := NewNamespace()
	ns.Add("users", NewObject(content.ObjectConfig{
		Order: []string{"id", "name", "email"},
		Properties: map[string]content.Node{
			"id":    NewSeries(1, 1, 0),
			"name":  NewDatasource("person.full_name"),
			"email": NewSameAs("users.name"),
		},
	}))
	return ns
}

func TestCompileAndSampleRoundTrip(t *testing.T) {
	ns := exampleNamespace()
	compiled, err := Compile(ns, compiler.Options{Seed: 1})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	records, order, err := Sample(ns, compiled, map[string]int{"users": 3}, 1, nil)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(order) != 1 || order[0] != "users" {
		t.Fatalf("unexpected order: %v", order)
	}
	if len(records["users"]) != 3 {
		t.Fatalf("expected 3 users, got %d", len(records["users"]))
	}
}

func TestSampleToJSONProducesCollectionKeyedArrays(t *testing.T) {
	ns := exampleNamespace()
	out, err := SampleToJSON(ns, compiler.Options{Seed: 5, Logger: nil}, map[string]int{"users": 2}, 5)
	if err != nil {
		t.Fatalf("SampleToJSON: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty JSON output")
	}
	if out[0] != '{' {
		t.Fatalf("expected a JSON object at the top level, got %q", out[:1])
	}
}

func TestLoadNamespaceParsesDocument(t *testing.T) {
	doc := `{
		"order": ["flags"],
		"collections": {
			"flags": {"type": "bool", "frequency": 1}
		}
	}`
	ns, err := LoadNamespace([]byte(doc))
	if err != nil {
		t.Fatalf("LoadNamespace: %v", err)
	}
	if _, ok := ns.Collections["flags"].(*content.Bool); !ok {
		t.Fatalf("expected a Bool collection, got %T", ns.Collections["flags"])
	}
}

func TestCompileRejectsSameAsCycleThroughPublicAPI(t *testing.T) {
	ns := NewNamespace()
	ns.Add("a", NewObject(content.ObjectConfig{
		Order:      []string{"x", "y"},
		Properties: map[string]content.Node{"x": NewSameAs("a.y"), "y": NewSameAs("a.x")},
	}))
	if _, err := Compile(ns, compiler.Options{Seed: 1}); err == nil {
		t.Fatal("expected a cycle error")
	}
}
