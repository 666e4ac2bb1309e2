// Package unit carries a unit of work (one request, one job) through
// context.Context. Each unit owns an attribute bag used as the storage slot
// for state that must not outlive it, such as the active flow Context.
package unit
