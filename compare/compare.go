// Package compare provides comparison functions used to order the elements of
// the containers in this module.
//
// A comparison function returns a negative value when a sorts before b, a
// positive value when a sorts after b, and zero when they are equivalent.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Reverse returns a comparison function which orders values in the opposite
// order of cmp.
func Reverse[T any](cmp func(T, T) int) func(T, T) int {
	return func(a, b T) int { return cmp(b, a) }
}

// Less adapts a strict weak ordering predicate into a comparison function.
// Two values are equivalent when neither is less than the other.
func Less[T any](less func(T, T) bool) func(T, T) int {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return +1
		default:
			return 0
		}
	}
}
