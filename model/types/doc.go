// Package types defines the contracts shared between the flow runtime, the
// extension registry and the event dispatcher.
package types
