// Package idgen generates unit-of-work identifiers. Callers treat the result
// as an opaque string.
package idgen

import "github.com/google/uuid"

// NewFunc produces identifiers; tests replace it for deterministic ids.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new unit-of-work identifier.
func New() string { return NewFunc() }

// WithPrefix returns an identifier prefixed with prefix and a dash, or a plain
// identifier when prefix is empty.
func WithPrefix(prefix string) string {
	if prefix == "" {
		return New()
	}
	return prefix + "-" + New()
}
