package flow

import (
	"errors"
	"fmt"
)

// Scope errors signal caller defects; they are never transient and must not
// be retried. Use errors.Is to detect the class.
var (
	// ErrIsolationViolation is returned whenever core or module code breaks
	// the scoping rules of a Context.
	ErrIsolationViolation = errors.New("flow: isolation violation")

	// ErrStackUnderflow is returned when ExitModuleScope is called with an
	// empty module stack.
	ErrStackUnderflow = errors.New("flow: module stack underflow")

	// ErrInvalidModule is returned for module names that cannot own a
	// metadata namespace (empty or containing the qualifier delimiter).
	ErrInvalidModule = fmt.Errorf("%w: invalid module name", ErrIsolationViolation)

	// ErrUnbalancedScope is returned when code run by RunInModuleScope leaves
	// the stack deeper than it found it, or tries to pop the guard's frame.
	ErrUnbalancedScope = fmt.Errorf("%w: unbalanced module scope", ErrStackUnderflow)
)

func isolationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrIsolationViolation}, args...)...)
}
