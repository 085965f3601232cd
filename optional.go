package orn2ttl

// Optional is either Present(value) or Absent
type Optional[T any] struct {
	value   T
	present bool
}

// Present wraps a value
func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Absent returns an empty Optional
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns value and presence flag
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether value has been set
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns value or given fallback
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}
