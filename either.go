// Package either provides Either, a value that holds exactly one of two
// distinct types.
//
// An Either[L, R] is either a Left holding an L or a Right holding an R, never
// both and never neither. The zero value is a Left holding the zero L. The
// inactive slot is always kept at its zero value, so it owns nothing and two
// Eithers of comparable types can be compared with ==.
//
// Accessing the inactive side through Left, Right or Get is a contract
// violation and panics with a *ContractError. LeftPtr, RightPtr, GetPointer
// and Is never panic on a valid instantiation.
package either

import (
	"fmt"
	"reflect"
)

// Side identifies the active variant of an Either.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Either represents a value of one of two possible types.
// By convention, Left is used for errors and Right for success values.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Releaser is implemented by values that own resources which must be freed
// when the value is destroyed by the container.
type Releaser interface {
	Release()
}

// Cloner is implemented by values whose copy must not share ownership with
// the original.
type Cloner[T any] interface {
	Clone() T
}

// Left creates an Either with a left value.
func Left[L, R any](value L) Either[L, R] {
	mustDistinct[L, R]("Left")
	return Either[L, R]{left: value}
}

// Right creates an Either with a right value.
func Right[L, R any](value R) Either[L, R] {
	mustDistinct[L, R]("Right")
	return Either[L, R]{right: value, isRight: true}
}

// EmplacedLeft creates a Left whose value is built by ctor.
func EmplacedLeft[L, R any](ctor func() L) Either[L, R] {
	mustDistinct[L, R]("EmplacedLeft")
	return Either[L, R]{left: ctor()}
}

// EmplacedRight creates a Right whose value is built by ctor.
func EmplacedRight[L, R any](ctor func() R) Either[L, R] {
	mustDistinct[L, R]("EmplacedRight")
	return Either[L, R]{right: ctor(), isRight: true}
}

// IsLeft returns true if Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Side returns the active side.
func (e Either[L, R]) Side() Side {
	if e.isRight {
		return SideRight
	}
	return SideLeft
}

// Left returns the left value. It panics if e is a Right.
func (e Either[L, R]) Left() L {
	if e.isRight {
		panic(wrongSide("Left", SideLeft, SideRight))
	}
	return e.left
}

// Right returns the right value. It panics if e is a Left.
func (e Either[L, R]) Right() R {
	if !e.isRight {
		panic(wrongSide("Right", SideRight, SideLeft))
	}
	return e.right
}

// LeftPtr returns a pointer to the stored left value, or nil if e is a Right.
func (e *Either[L, R]) LeftPtr() *L {
	if e.isRight {
		return nil
	}
	return &e.left
}

// RightPtr returns a pointer to the stored right value, or nil if e is a Left.
func (e *Either[L, R]) RightPtr() *R {
	if !e.isRight {
		return nil
	}
	return &e.right
}

// LeftOr returns the left value or a default.
func (e Either[L, R]) LeftOr(defaultValue L) L {
	if !e.isRight {
		return e.left
	}
	return defaultValue
}

// RightOr returns the right value or a default.
func (e Either[L, R]) RightOr(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// GetOrElse returns the right value or computes one from the left value.
func (e Either[L, R]) GetOrElse(fn func(L) R) R {
	if e.isRight {
		return e.right
	}
	return fn(e.left)
}

// Clone returns a copy of e holding an independently owned value.
// Values implementing Cloner are deep copied through Clone.
func (e Either[L, R]) Clone() Either[L, R] {
	if e.isRight {
		return Either[L, R]{right: clone(e.right), isRight: true}
	}
	return Either[L, R]{left: clone(e.left)}
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

func clone[T any](v T) T {
	c, ok := any(v).(Cloner[T])
	if !ok {
		c, ok = any(&v).(Cloner[T])
	}
	if !ok || isNil(any(v)) {
		return v
	}
	return c.Clone()
}

// release frees v if it owns resources and resets it to the zero value.
func release[T any](v *T) {
	if r, ok := releaserOf(v); ok {
		r.Release()
	}
	var zero T
	*v = zero
}

// overwrite stores v in slot, releasing the previous value unless slot
// already holds the same handle.
func overwrite[T any](slot *T, v T) {
	if r, ok := releaserOf(slot); ok && !sameHandle(any(*slot), any(v)) {
		r.Release()
	}
	*slot = v
}

// releaserOf returns the Releaser owning *v, if any. Nil handles own nothing.
func releaserOf[T any](v *T) (Releaser, bool) {
	r, ok := any(v).(Releaser)
	if !ok {
		r, ok = any(*v).(Releaser)
	}
	if !ok || isNil(any(*v)) {
		return nil, false
	}
	return r, true
}

// sameHandle reports whether a and b refer to the same owned resource.
func sameHandle(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() || ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	}
	if ra.Comparable() && rb.Comparable() {
		return ra.Equal(rb)
	}
	return false
}

// isNil reports whether v is nil or a nil handle; moved-from handles are
// never released or cloned.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
