package pointer

func FromAny[T any](v T) *T {
	return &v
}

// FromNonZero returns nil for the zero value of T
func FromNonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
