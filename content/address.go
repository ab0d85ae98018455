package content

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is one segment of an Address: either a named object field or a
// numeric array index.
type Step struct {
	Field string
	Index int
	isIndex bool
}

func FieldStep(name string) Step { return Step{Field: name} }
func IndexStep(i int) Step       { return Step{Index: i, isIndex: true} }

func (s Step) IsIndex() bool { return s.isIndex }

func (s Step) String() string {
	if s.isIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Field
}

// Address identifies a node's position in a namespace: a collection name
// followed by a path of Steps down into that collection's content tree.
// Addresses are compared structurally — Less gives a stable, deterministic
// ordering over them.
type Address struct {
	Collection string
	Path       []Step
}

func NewAddress(collection string, steps ...Step) Address {
	return Address{Collection: collection, Path: append([]Step(nil), steps...)}
}

func (a Address) Child(step Step) Address {
	return Address{Collection: a.Collection, Path: append(append([]Step(nil), a.Path...), step)}
}

func (a Address) String() string {
	var b strings.Builder
	b.WriteString(a.Collection)
	for _, s := range a.Path {
		b.WriteByte('.')
		b.WriteString(s.String())
	}
	return b.String()
}

// Less gives a stable lexicographic ordering: collection name first, then
// path segments in order, field names sorting before indices at a given
// depth, shorter paths sorting before their own extensions.
func (a Address) Less(other Address) bool {
	if a.Collection != other.Collection {
		return a.Collection < other.Collection
	}
	for i := 0; i < len(a.Path) && i < len(other.Path); i++ {
		as, bs := a.Path[i], other.Path[i]
		if as.isIndex != bs.isIndex {
			return !as.isIndex
		}
		if as.isIndex {
			if as.Index != bs.Index {
				return as.Index < bs.Index
			}
			continue
		}
		if as.Field != bs.Field {
			return as.Field < bs.Field
		}
	}
	return len(a.Path) < len(other.Path)
}

// ParsePath parses a dotted reference path used by same_as fields, e.g.
// "users.content.email" or "orders.items.0.sku". Grounded on
// engine/references.go's ParseReference grammar, generalized here to plain
// dotted field/array-index segments (namespace:name@version decorations
// belonged to a cross-repo schema registry this document format does not
// have).
func ParsePath(path string) (Address, error) {
	if path == "" {
		return Address{}, fmt.Errorf("content: empty reference path")
	}
	segments := strings.Split(path, ".")
	addr := Address{Collection: segments[0]}
	for _, seg := range segments[1:] {
		if seg == "" {
			return Address{}, fmt.Errorf("content: empty segment in reference path %q", path)
		}
		if n, err := strconv.Atoi(seg); err == nil {
			addr.Path = append(addr.Path, IndexStep(n))
			continue
		}
		addr.Path = append(addr.Path, FieldStep(seg))
	}
	return addr, nil
}
