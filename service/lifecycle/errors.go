package lifecycle

import (
	"errors"
	"fmt"
)

// ErrFlowState is the class of errors raised when the active-context slot is
// not in the state an operation requires.
var ErrFlowState = errors.New("flow: invalid state")

var (
	// ErrAlreadyActive is returned by Start when a context is already active.
	ErrAlreadyActive = fmt.Errorf("%w: there is already an active context, call Stop first", ErrFlowState)

	// ErrNoActiveContext is returned by Emit and Stop when no context is active.
	ErrNoActiveContext = fmt.Errorf("%w: no active context, call Start first", ErrFlowState)

	// ErrNoUnitOfWork is returned when the context.Context carries no unit of work.
	ErrNoUnitOfWork = fmt.Errorf("%w: no unit of work in context", ErrFlowState)
)
