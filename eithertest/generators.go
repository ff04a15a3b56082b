// Package eithertest provides rapid generators and helpers for testing code
// that produces or consumes either.Either values.
package eithertest

import (
	"errors"

	"github.com/authcorp/libs/go/either"
	"pgregory.net/rapid"
)

// EitherGen draws a side first, then a value from the matching generator.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return either.Right[L](rightGen.Draw(t, "right"))
		}
		return either.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// LeftGen wraps every value drawn from leftGen as a left.
func LeftGen[L, R any](leftGen *rapid.Generator[L]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		return either.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// RightGen wraps every value drawn from rightGen as a right.
func RightGen[L, R any](rightGen *rapid.Generator[R]) *rapid.Generator[either.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) either.Either[L, R] {
		return either.Right[L](rightGen.Draw(t, "right"))
	})
}

// SideGen generates either.SideLeft or either.SideRight.
func SideGen() *rapid.Generator[either.Side] {
	return rapid.SampledFrom([]either.Side{either.SideLeft, either.SideRight})
}

// ErrorGen generates non-nil error values.
func ErrorGen() *rapid.Generator[error] {
	return rapid.Custom(func(t *rapid.T) error {
		return errors.New(rapid.String().Draw(t, "errorMsg"))
	})
}

// ResultGen generates Either[error, T] values, the (error, value) shape
// produced by either.FromError.
func ResultGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[either.Either[error, T]] {
	return EitherGen(ErrorGen(), valueGen)
}
