package types

import "fmt"

func NewMethodNotFoundError(module, name string) error {
	return fmt.Errorf("module %v: method %v not found", module, name)
}

func NewInvalidModuleError(module string, err error) error {
	return fmt.Errorf("invalid module %q: %w", module, err)
}
