package sample

import "fmt"

// SampleError reports a failure to sample a collection, following the same
// shape as compiler.CompileError but keyed by collection name rather than a
// content.Address (a sampling failure is always scoped to a whole
// collection, never a single field).
type SampleError struct {
	Collection string
	Message    string
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample: %s: %s", e.Collection, e.Message)
}
