package either

import "iter"

// Fold calls onLeft with the left value or onRight with the right value and
// returns the result. Exactly one of the two functions runs.
func Fold[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Match is Fold for side effects: it calls onLeft or onRight and returns
// nothing.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// MapRight transforms a right value with fn. A left value passes through
// untouched.
func MapRight[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MapLeft is the mirror of MapRight; only a left value is transformed.
func MapLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if !e.isRight {
		return Left[U, R](fn(e.left))
	}
	return Right[U](e.right)
}

// FlatMap chains fn onto a right value. fn decides the resulting side, and a
// left value short-circuits without calling fn.
func FlatMap[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return fn(e.right)
	}
	return Left[L, U](e.left)
}

// Flip returns e with its sides swapped: Left(x) becomes Right(x) and
// vice versa.
func (e Either[L, R]) Flip() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// All yields the right value once, or nothing for a left value.
func (e Either[L, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		if e.isRight {
			yield(e.right)
		}
	}
}

// FromError returns Right(value) when err is nil and Left(err) otherwise.
func FromError[R any](value R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](value)
}

// ToError unpacks an Either[error, R] into the usual (value, error) pair.
func ToError[R any](e Either[error, R]) (R, error) {
	if e.isRight {
		return e.right, nil
	}
	var zero R
	return zero, e.left
}
