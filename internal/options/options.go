// Package options provides generic functional options shared by scedar packages.
package options

// Option represents a functional option for configuring any type T.
//
// Packages alias this with a concrete config type, e.g.
// `type Option = options.Option[*Config]`, and expose With* constructors.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
// It implements the Option interface for any type T.
type Func[T any] func(T) error

// apply implements the Option interface.
func (f Func[T]) apply(target T) error {
	return f(target)
}

// New creates a functional option from a function that may fail validation.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError creates a functional option from a function that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies the options to a target object in order.
// The first option returning an error stops the application.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
