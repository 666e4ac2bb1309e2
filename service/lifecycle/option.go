package lifecycle

import "log/slog"

type Option func(s *Service)

// WithAttributeKey sets the slot attribute holding the active context
func WithAttributeKey(key string) Option {
	return func(s *Service) {
		if key != "" {
			s.attributeKey = key
		}
	}
}

// WithSlotResolver replaces the default unit-of-work slot lookup
func WithSlotResolver(resolver SlotResolver) Option {
	return func(s *Service) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
