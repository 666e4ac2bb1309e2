package event

import "log/slog"

type Option func(d *Dispatcher)

// WithLogger sets the logger used for swallowed handler errors
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithContinueOnError keeps dispatching after a handler fails
func WithContinueOnError(flag bool) Option {
	return func(d *Dispatcher) {
		d.continueOnError = flag
	}
}
