// Package extension registers flow modules and subscribes their hooks to an
// event dispatcher.
//
// Every subscribed handler is wrapped by Scoped, which pushes the module's
// name onto the flow Context's module stack for the duration of the call.
// Module authors therefore never manage scope themselves.
//
// Most applications register modules through the root flowctx Service rather
// than importing this package directly.
package extension
