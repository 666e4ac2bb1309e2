package unit

// Option configures a Unit
type Option func(u *Unit)

// WithID sets the unit id; by default a UUID is generated.
func WithID(id string) Option {
	return func(u *Unit) {
		u.ID = id
	}
}

// WithAttributes seeds the attribute bag.
func WithAttributes(attributes map[string]interface{}) Option {
	return func(u *Unit) {
		for k, v := range attributes {
			u.attributes[k] = v
		}
	}
}

// WithIDPrefix generates the unit id with a prefix, for example "req".
func WithIDPrefix(prefix string) Option {
	return func(u *Unit) {
		u.prefix = prefix
	}
}
