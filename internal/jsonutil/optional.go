package jsonutil

// Optional holds either a present value or nothing. It keeps "absent"
// distinct from a present zero value such as 0, false or "".
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the held value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

// MustGet returns the held value. Panics when absent.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("jsonutil: MustGet on absent value")
	}
	return o.value
}
