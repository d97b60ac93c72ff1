// Package options implements functional options for the varbin constructors.
package options

import "fmt"

// Option configures a target of type T, typically a pointer to a config struct.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a setter function.
type Func[T any] struct {
	set func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.set(target)
}

// New returns an option whose setter may reject its argument.
func New[T any](set func(T) error) *Func[T] {
	return &Func[T]{set: set}
}

// NoError returns an option whose setter cannot fail.
func NoError[T any](set func(T)) *Func[T] {
	return &Func[T]{
		set: func(target T) error {
			set(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first failing option.
//
// Nil options are skipped, which lets callers build option lists conditionally.
// The returned error wraps the option's error together with its position in opts.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt.apply(target); err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
	}

	return nil
}
