package test

import (
	"fmt"

	"go.uber.org/mock/gomock"
)

// Match returns a gomock matcher for arguments of type T satisfying the predicate
func Match[T any](predicate func(v T) bool) gomock.Matcher {
	return predicateMatcher[T](predicate)
}

type predicateMatcher[T any] func(v T) bool

func (p predicateMatcher[T]) Matches(x interface{}) bool {
	v, ok := x.(T)
	return ok && p(v)
}

func (p predicateMatcher[T]) String() string {
	var zero T
	return fmt.Sprintf("is a %T matching the predicate", zero)
}
