// Package content implements the schema AST: the tree of named content
// nodes a namespace document compiles into a generator graph. Node mirrors
// a Type/Metadata/Clone schema interface pared down to what a declarative,
// data-only node needs — there is no reflection-driven schema derivation
// here, only the kinds a namespace document can name.
package content

// Kind identifies which content variant a Node implements. Kept as a
// string rather than an int enum so JSON discriminators (package
// jsonschema) and error messages can use the same token.
type Kind string

const (
	KindNull       Kind = "null"
	KindBool       Kind = "bool"
	KindNumber     Kind = "number"
	KindString     Kind = "string"
	KindDateTime   Kind = "date_time"
	KindArray      Kind = "array"
	KindObject     Kind = "object"
	KindOneOf      Kind = "one_of"
	KindOptional   Kind = "optional"
	KindSameAs     Kind = "same_as"
	KindUnique     Kind = "unique"
	KindSeries     Kind = "series"
	KindDatasource Kind = "datasource"
	KindScript     Kind = "script"
)

// Node is a compiled-from-JSON schema element. Every concrete node type in
// this package implements Node and also exposes kind-specific accessors
// (e.g. *String exposes Pattern()) that the compiler's dispatch switch
// reads directly — narrower than a generic visitor, because the compiler
// is the only consumer and every kind compiles differently.
type Node interface {
	// Kind reports which content variant this node is.
	Kind() Kind

	// Clone returns a deep copy. The compiler reads nodes without mutating
	// them and does not clone them itself.
	Clone() Node
}

// Visitor dispatches on concrete node kind, following a
// SchemaVisitor/Accepter pattern, for callers that want double dispatch.
// The compiler does not use it (it dispatches with a type switch), and Walk
// is a separate callback-based traversal.
type Visitor interface {
	VisitNull(*Null) error
	VisitBool(*Bool) error
	VisitNumber(*Number) error
	VisitString(*String) error
	VisitDateTime(*DateTime) error
	VisitArray(*Array) error
	VisitObject(*Object) error
	VisitOneOf(*OneOf) error
	VisitOptional(*Optional) error
	VisitSameAs(*SameAs) error
	VisitUnique(*Unique) error
	VisitSeries(*Series) error
	VisitDatasource(*Datasource) error
	VisitScript(*Script) error
}

// Accepter is implemented by every concrete node; Accept dispatches to the
// matching Visitor method.
type Accepter interface {
	Accept(v Visitor) error
}

// Walk visits node and, for container kinds (Array, Object, OneOf,
// Optional), every descendant, depth-first, calling handler on each node
// including the root. It stops and returns the first error handler
// produces.
func Walk(node Node, handler func(Node) error) error {
	if err := handler(node); err != nil {
		return err
	}
	switch n := node.(type) {
	case *Array:
		return Walk(n.Item, handler)
	case *Object:
		for _, name := range n.Order {
			if err := Walk(n.Properties[name], handler); err != nil {
				return err
			}
		}
	case *OneOf:
		for _, branch := range n.Branches {
			if err := Walk(branch, handler); err != nil {
				return err
			}
		}
	case *Optional:
		return Walk(n.Inner, handler)
	}
	return nil
}
