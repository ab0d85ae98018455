package content

// Script evaluates a JavaScript Expression once per record via goja
// (compiler/script.go), with read access to sibling fields already
// produced earlier in the same round through the enclosing Object's
// round-local value map. Supplements the dropped-but-revivable "function"
// content family, originally modeled as RPC endpoints (see SPEC_FULL §2
// item 10); this is a per-record derived-field computation, not a remote
// call.
type Script struct {
	Expression string
}

func NewScript(expression string) *Script {
	return &Script{Expression: expression}
}

func (s *Script) Kind() Kind { return KindScript }

func (s *Script) Clone() Node { return &Script{Expression: s.Expression} }

func (s *Script) Accept(v Visitor) error { return v.VisitScript(s) }
