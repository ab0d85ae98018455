package content

import "fmt"

// Namespace is a compile-time schema document: a set of named top-level
// collections, each rooted at a Node, plus the declaration order the
// sampler falls back to when topological order doesn't otherwise
// distinguish two collections (§4.3's "topological order, then insertion
// order").
type Namespace struct {
	Collections map[string]Node
	Order       []string
}

func NewNamespace() *Namespace {
	return &Namespace{Collections: make(map[string]Node)}
}

// Add registers a collection, appending it to declaration order. Adding the
// same name twice replaces the node but keeps its original position.
func (n *Namespace) Add(name string, node Node) {
	if _, exists := n.Collections[name]; !exists {
		n.Order = append(n.Order, name)
	}
	n.Collections[name] = node
}

// TopologicalOrder returns collection names ordered so that every
// collection referenced by a same_as Reference in another collection comes
// before it, breaking ties with declaration order. It returns an error
// naming the offending collection if same_as references form a cycle.
//
// Grounded on engine/references.go + engine/engine.go's dependency
// resolution shape, generalized from a cross-repo schema registry to
// same_as edges within a single namespace document.
func (n *Namespace) TopologicalOrder() ([]string, error) {
	deps := make(map[string]map[string]bool, len(n.Collections))
	for _, name := range n.Order {
		deps[name] = map[string]bool{}
		_ = Walk(n.Collections[name], func(node Node) error {
			sa, ok := node.(*SameAs)
			if !ok {
				return nil
			}
			addr, err := ParsePath(sa.Reference)
			if err != nil {
				return nil
			}
			if addr.Collection != name {
				deps[name][addr.Collection] = true
			}
			return nil
		})
	}

	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)
	state := make(map[string]int, len(n.Order))
	var order []string
	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visited:
			return nil
		case visiting:
			return fmt.Errorf("content: cycle detected through collection %q", name)
		}
		state[name] = visiting
		for dep := range deps[name] {
			if _, ok := n.Collections[dep]; !ok {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[name] = visited
		order = append(order, name)
		return nil
	}
	for _, name := range n.Order {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
