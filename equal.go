package either

import "reflect"

// Equal reports whether a and b hold the same side with equal values.
//
// Values are compared with ==. When L or R is an interface type whose dynamic
// value is not comparable (a slice-backed error, say), the values are compared
// with reflect.DeepEqual instead of panicking. Use EqualFunc to control the
// comparison.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return equalValue(a.right, b.right)
	}
	return equalValue(a.left, b.left)
}

// EqualFunc is like Equal but compares values with eqLeft and eqRight, for
// types that are not comparable with ==.
func EqualFunc[L, R any](a, b Either[L, R], eqLeft func(L, L) bool, eqRight func(R, R) bool) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return eqRight(a.right, b.right)
	}
	return eqLeft(a.left, b.left)
}

// equalValue is == that does not panic. Interfaces holding different dynamic
// types never reach the panicking path, so checking a alone is enough.
func equalValue[T comparable](a, b T) bool {
	if v := reflect.ValueOf(any(a)); v.IsValid() && !v.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
