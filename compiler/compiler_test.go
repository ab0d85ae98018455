package compiler

import (
	"math/rand"
	"testing"

	"github.com/synthkit/synth/content"
	"github.com/synthkit/synth/gen"
	"github.com/synthkit/synth/value"
)

func simpleNamespace() *content.Namespace {
	ns := content.NewNamespace()
	ns.Add("users", content.NewObject(content.ObjectConfig{
		Order: []string{"id", "name", "email"},
		Properties: map[string]content.Node{
			"id":    content.NewSeries(1, 1, 0),
			"name":  content.NewDatasource("person.full_name"),
			"email": content.NewSameAs("users.name"),
		},
	}))
	return ns
}

func TestCompileNamespaceProducesOneFactoryPerCollection(t *testing.T) {
	c := New(Options{Seed: 1})
	compiled, err := c.CompileNamespace(simpleNamespace())
	if err != nil {
		t.Fatalf("CompileNamespace: %v", err)
	}
	if len(compiled.Order) != 1 || compiled.Order[0] != "users" {
		t.Fatalf("unexpected order: %v", compiled.Order)
	}
	build, ok := compiled.Collections["users"]
	if !ok {
		t.Fatal("missing users factory")
	}
	rng := rand.New(rand.NewSource(1))
	v := build().Complete(rng)
	obj, ok := v.Object()
	if !ok {
		t.Fatalf("expected an object, got %v", v.GoString())
	}
	name, _ := obj.Get("name")
	email, _ := obj.Get("email")
	if !value.Equal(name, email) {
		t.Fatalf("expected email to mirror name via same_as, got name=%v email=%v", name.GoString(), email.GoString())
	}
}

func TestCompileNamespaceRejectsSameAsCycle(t *testing.T) {
	ns := content.NewNamespace()
	ns.Add("users", content.NewObject(content.ObjectConfig{
		Order: []string{"a", "b"},
		Properties: map[string]content.Node{
			"a": content.NewSameAs("users.b"),
			"b": content.NewSameAs("users.a"),
		},
	}))
	c := New(Options{Seed: 1})
	if _, err := c.CompileNamespace(ns); err == nil {
		t.Fatal("expected a cycle error")
	}
}

func TestCompileSameAsRejectsCrossCollectionReference(t *testing.T) {
	ns := content.NewNamespace()
	ns.Add("a", content.NewObject(content.ObjectConfig{
		Order:      []string{"x"},
		Properties: map[string]content.Node{"x": content.NewNumber(content.NumberConfig{Subtype: content.SubtypeI64})},
	}))
	ns.Add("b", content.NewObject(content.ObjectConfig{
		Order:      []string{"y"},
		Properties: map[string]content.Node{"y": content.NewSameAs("a.x")},
	}))
	c := New(Options{Seed: 1})
	if _, err := c.CompileNamespace(ns); err == nil {
		t.Fatal("expected an error for a cross-collection same_as reference")
	}
}

func TestCompileSameAsRejectsUndeclaredReference(t *testing.T) {
	ns := content.NewNamespace()
	ns.Add("users", content.NewObject(content.ObjectConfig{
		Order:      []string{"a"},
		Properties: map[string]content.Node{"a": content.NewSameAs("users.nope")},
	}))
	c := New(Options{Seed: 1})
	if _, err := c.CompileNamespace(ns); err == nil {
		t.Fatal("expected an error for a reference to an undeclared field")
	}
}

func TestCompileNumberRejectsInvertedBounds(t *testing.T) {
	lo, hi := 10.0, 1.0
	ns := content.NewNamespace()
	ns.Add("x", content.NewNumber(content.NumberConfig{Subtype: content.SubtypeI64, Minimum: &lo, Maximum: &hi}))
	c := New(Options{Seed: 1})
	if _, err := c.CompileNamespace(ns); err == nil {
		t.Fatal("expected an error for minimum > maximum")
	}
}

func TestCompileStringRejectsUnknownFormat(t *testing.T) {
	ns := content.NewNamespace()
	ns.Add("x", content.NewString(content.StringConfig{Format: "not-a-real-format"}))
	c := New(Options{Seed: 1})
	if _, err := c.CompileNamespace(ns); err == nil {
		t.Fatal("expected an error for an unknown string format")
	}
}

func TestCompileDatasourceRejectsUnknownTag(t *testing.T) {
	ns := content.NewNamespace()
	ns.Add("x", content.NewDatasource("not-a-real-tag"))
	c := New(Options{Seed: 1})
	if _, err := c.CompileNamespace(ns); err == nil {
		t.Fatal("expected an error for an unknown faker tag")
	}
}

func TestCompileArrayRejectsInvertedBounds(t *testing.T) {
	ns := content.NewNamespace()
	ns.Add("x", content.NewArray(content.ArrayConfig{
		Item:     content.NewNumber(content.NumberConfig{Subtype: content.SubtypeI64}),
		MinItems: 5, MaxItems: 1,
	}))
	c := New(Options{Seed: 1})
	if _, err := c.CompileNamespace(ns); err == nil {
		t.Fatal("expected an error for min_items > max_items")
	}
}

func TestCompileUniqueArrayAvoidsDuplicatesWithinBudget(t *testing.T) {
	// Integer draws come from [minimum, maximum), so [0, 2) holds the two
	// values 0 and 1.
	lo, hi := 0.0, 2.0
	ns := content.NewNamespace()
	ns.Add("x", content.NewArray(content.ArrayConfig{
		Item:        content.NewNumber(content.NumberConfig{Subtype: content.SubtypeI64, Minimum: &lo, Maximum: &hi}),
		MinItems:    2, MaxItems: 2, UniqueItems: true,
	}))
	c := New(Options{Seed: 7, UniqueRetryBudget: 1000})
	compiled, err := c.CompileNamespace(ns)
	if err != nil {
		t.Fatalf("CompileNamespace: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	v := compiled.Collections["x"]().Complete(rng)
	items, _ := v.Array()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if value.Equal(items[0], items[1]) {
		t.Fatalf("expected 2 distinct items, got %v and %v", items[0].GoString(), items[1].GoString())
	}
}

func TestCompileUniqueArrayRejectsProvablyInsufficientDomain(t *testing.T) {
	ns := content.NewNamespace()
	ns.Add("x", content.NewArray(content.ArrayConfig{
		Item:        content.NewBool(0.5),
		MinItems:    3, MaxItems: 3, UniqueItems: true,
	}))
	c := New(Options{Seed: 1})
	if _, err := c.CompileNamespace(ns); err == nil {
		t.Fatal("expected a CompileError: a boolean domain of size 2 cannot satisfy 3 unique draws")
	}
}

func TestCompileUniqueRejectsSingleValueDomain(t *testing.T) {
	ns := content.NewNamespace()
	ns.Add("x", content.NewUnique(content.NewConstantBool(true)))
	c := New(Options{Seed: 1})
	if _, err := c.CompileNamespace(ns); err == nil {
		t.Fatal("expected a CompileError: a constant domain can never produce a second unique draw")
	}
}

func TestCompileUniqueAllowsSufficientDomain(t *testing.T) {
	lo, hi := 0.0, 9.0
	ns := content.NewNamespace()
	ns.Add("x", content.NewUnique(content.NewNumber(content.NumberConfig{Subtype: content.SubtypeI64, Minimum: &lo, Maximum: &hi})))
	c := New(Options{Seed: 1})
	if _, err := c.CompileNamespace(ns); err != nil {
		t.Fatalf("expected a 9-value integer domain [0, 9) to compile under unique, got %v", err)
	}
}

func TestCompileSeriesIncrementsAcrossCompletions(t *testing.T) {
	c := New(Options{Seed: 1})
	build := c.compileSeries(content.NewSeries(10, 5, 0))
	rng := rand.New(rand.NewSource(1))
	first := build().Complete(rng)
	second := build().Complete(rng)
	third := build().Complete(rng)
	f, _ := first.F64()
	s, _ := second.F64()
	th, _ := third.F64()
	if f != 10 || s != 15 || th != 20 {
		t.Fatalf("expected 10,15,20, got %v,%v,%v", f, s, th)
	}
}

func TestCompileOptionalHonorsProbabilityExtremes(t *testing.T) {
	c := New(Options{Seed: 1})
	always, err := c.compileOptional(content.NewOptional(content.NewNumber(content.NumberConfig{Subtype: content.SubtypeI64}), 1), newScope("x"), content.NewAddress("x"))
	if err != nil {
		t.Fatalf("compileOptional: %v", err)
	}
	never, err := c.compileOptional(content.NewOptional(content.NewNumber(content.NumberConfig{Subtype: content.SubtypeI64}), 0), newScope("x"), content.NewAddress("x"))
	if err != nil {
		t.Fatalf("compileOptional: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	if v := always().Complete(rng); v.IsNull() {
		t.Fatal("probability 1 should never produce null")
	}
	if v := never().Complete(rng); !v.IsNull() {
		t.Fatal("probability 0 should always produce null")
	}
}

func TestCompileOneOfOnlyProducesDeclaredBranches(t *testing.T) {
	c := New(Options{Seed: 1})
	branches := []content.Node{
		content.NewConstantBool(true),
		content.NewConstantBool(false),
	}
	build, err := c.compileOneOf(content.NewOneOf(branches, nil), newScope("x"), content.NewAddress("x"))
	if err != nil {
		t.Fatalf("compileOneOf: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		v := build().Complete(rng)
		if _, ok := v.Bool(); !ok {
			t.Fatalf("expected a bool, got %v", v.GoString())
		}
	}
}

func TestCompileNamespaceDeterministicWithSameSeed(t *testing.T) {
	build := func(seed int64) value.Value {
		c := New(Options{Seed: seed})
		compiled, err := c.CompileNamespace(simpleNamespace())
		if err != nil {
			t.Fatalf("CompileNamespace: %v", err)
		}
		rng := rand.New(rand.NewSource(seed))
		return compiled.Collections["users"]().Complete(rng)
	}
	a := build(42)
	b := build(42)
	if !value.Equal(a, b) {
		t.Fatalf("same seed produced different output: %v vs %v", a.GoString(), b.GoString())
	}
}

func TestGenCompleteSmokeForValueGenAlias(t *testing.T) {
	var g valueGen = gen.Complete[value.Value]{Value: value.I64(7)}
	rng := rand.New(rand.NewSource(1))
	v := g.Complete(rng)
	n, ok := v.I64()
	if !ok || n != 7 {
		t.Fatalf("expected 7, got %v", v.GoString())
	}
}
