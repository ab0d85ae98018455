package compiler

import (
	"fmt"

	"github.com/synthkit/synth/content"
)

// CompileError reports a failure to compile a content node into a
// generator, carrying the node's address so a caller can point at the
// offending field. Shaped after synth/src/error.rs's kind+address+message
// triple, translated to a plain Go error an fmt.Errorf("...: %w", err)
// wrapping style can chain around.
type CompileError struct {
	Address content.Address
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compiler: %s: %s", e.Address, e.Message)
}

func newError(addr content.Address, format string, args ...any) *CompileError {
	return &CompileError{Address: addr, Message: fmt.Sprintf(format, args...)}
}
