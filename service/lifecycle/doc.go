// Package lifecycle controls the single active flow Context of a unit of
// work: Start creates it in the unit's slot, Emit forwards events to the
// dispatcher with it, and Stop removes it.
//
// The unit of work is passed explicitly through context.Context (see package
// unit); there is no process-wide "current request".
package lifecycle
