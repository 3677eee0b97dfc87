// Package options holds the functional-option plumbing shared by the
// module's configurable entry points: the cube decoder and encoder settings,
// the root read options and the fetch client. Each of those packages aliases
// Option to its own config type and builds its exported With* helpers from
// New and NoError.
package options

// Option mutates a config value of type T and may reject invalid input.
// Every exported With* helper in this module produces one of these.
type Option[T any] interface {
	apply(T) error
}

// funcOption adapts a setter function into an Option.
type funcOption[T any] struct {
	fn func(T) error
}

func (o funcOption[T]) apply(target T) error {
	return o.fn(target)
}

// New wraps a validating setter into an Option. Helpers that must reject
// bad input, such as a naming mode outside {label, id} or a nil HTTP
// client, are built with New so Apply can surface the failure.
func New[T any](fn func(T) error) Option[T] {
	return funcOption[T]{fn: fn}
}

// NoError wraps a setter that cannot fail, such as overriding the fetch
// client's user agent string.
func NoError[T any](fn func(T)) Option[T] {
	return funcOption[T]{fn: func(target T) error {
		fn(target)
		return nil
	}}
}

// Apply runs opts against target in order, stopping at the first error.
// Callers apply their defaults before calling Apply so later options win.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
