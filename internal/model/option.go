package model

// Option wraps a value that can be present or absent. The extraction
// pipeline distinguishes "no attributes found" from an empty collection at
// the assembly boundary, so absent is modelled explicitly instead of
// overloading the zero value.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Present reports whether a value is held.
func (o Option[T]) Present() bool {
	return o.present
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrZero returns the held value, or the zero value when absent.
func (o Option[T]) OrZero() T {
	return o.value
}
