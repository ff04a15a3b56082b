package either

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors carried by ContractError and decoding failures.
var (
	ErrSameType   = errors.New("either: left and right types must differ")
	ErrWrongSide  = errors.New("either: access to inactive side")
	ErrNotVariant = errors.New("either: type is neither left nor right")
	ErrMalformed  = errors.New("either: malformed encoding")
)

// ContractError is the panic value raised when a caller breaks a
// precondition of Either. It is never returned as an ordinary error.
type ContractError struct {
	Op    string
	Want  Side
	Got   Side
	Type  reflect.Type
	cause error
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	switch {
	case errors.Is(e.cause, ErrWrongSide):
		return fmt.Sprintf("%s: %v (want %s, have %s)", e.Op, e.cause, e.Want, e.Got)
	case e.Type != nil:
		return fmt.Sprintf("%s: %v: %s", e.Op, e.cause, e.Type)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.cause)
	}
}

// Unwrap returns the underlying sentinel for errors.Is/As.
func (e *ContractError) Unwrap() error {
	return e.cause
}

func wrongSide(op string, want, got Side) *ContractError {
	return &ContractError{Op: op, Want: want, Got: got, cause: ErrWrongSide}
}

// mustDistinct panics when L and R are the same type.
func mustDistinct[L, R any](op string) {
	if t := reflect.TypeFor[L](); t == reflect.TypeFor[R]() {
		panic(&ContractError{Op: op, Type: t, cause: ErrSameType})
	}
}

// sideOf reports which side of Either[L, R] stores a T.
func sideOf[T, L, R any](op string) Side {
	mustDistinct[L, R](op)
	switch t := reflect.TypeFor[T](); t {
	case reflect.TypeFor[L]():
		return SideLeft
	case reflect.TypeFor[R]():
		return SideRight
	default:
		panic(&ContractError{Op: op, Type: t, cause: ErrNotVariant})
	}
}
