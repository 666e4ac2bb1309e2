package flow

import (
	"fmt"
	"strings"
)

// EnterModuleScope pushes a module onto the stack. Nested pushes of the same
// or another module are allowed; they happen when a handler emits an event
// before returning.
func (c *Context) EnterModuleScope(module string) error {
	if err := ValidateModule(module); err != nil {
		return err
	}
	c.stack = append(c.stack, module)
	return nil
}

// ValidateModule checks that module can own a metadata namespace.
func ValidateModule(module string) error {
	if module == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidModule)
	}
	if strings.Contains(module, Delimiter) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidModule, module, Delimiter)
	}
	return nil
}

// ExitModuleScope pops the stack. Every EnterModuleScope must be matched by
// exactly one ExitModuleScope, in reverse order. Inside RunInModuleScope the
// frame pushed by the guard can not be popped by the code it runs.
func (c *Context) ExitModuleScope() error {
	if len(c.stack) == 0 {
		return ErrStackUnderflow
	}
	if len(c.stack) <= c.floor {
		return fmt.Errorf("%w: module %q can not exit the scope it runs in", ErrUnbalancedScope, c.stack[len(c.stack)-1])
	}
	c.stack[len(c.stack)-1] = ""
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

// RunInModuleScope runs fn with module on top of the stack. On every exit
// path of fn, including a panic, the stack is restored to its depth before
// the call. If fn left the stack unbalanced, ErrUnbalancedScope is returned
// unless fn itself failed.
func (c *Context) RunInModuleScope(module string, fn func() error) (err error) {
	depth, floor := len(c.stack), c.floor
	if err = c.EnterModuleScope(module); err != nil {
		return err
	}
	c.floor = depth + 1
	defer func() {
		c.floor = floor
		balanced := len(c.stack) == depth+1 && c.stack[depth] == module
		for i := depth; i < len(c.stack); i++ {
			c.stack[i] = ""
		}
		c.stack = c.stack[:depth]
		if !balanced && err == nil {
			err = fmt.Errorf("%w: module %q", ErrUnbalancedScope, module)
		}
	}()
	return fn()
}

// CurrentModule returns the module on top of the stack.
func (c *Context) CurrentModule() (string, bool) {
	if len(c.stack) == 0 {
		return "", false
	}
	return c.stack[len(c.stack)-1], true
}

// InModuleScope reports whether a module is executing.
func (c *Context) InModuleScope() bool {
	return len(c.stack) > 0
}

// Depth returns the module stack depth, the current re-entrancy level.
func (c *Context) Depth() int {
	return len(c.stack)
}
