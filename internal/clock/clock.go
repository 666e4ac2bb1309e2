// Package clock provides the time source used for emission timing.
package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Since returns the time elapsed since start according to NowFunc.
func Since(start time.Time) time.Duration { return NowFunc().Sub(start) }
