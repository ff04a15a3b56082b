package either

// Set copy-assigns o to e. The side is switched only when o holds the other
// side; either way the value previously held by e is released.
func (e *Either[L, R]) Set(o Either[L, R]) {
	if o.isRight {
		e.SetRight(clone(o.right))
	} else {
		e.SetLeft(clone(o.left))
	}
}

// MoveFrom move-assigns src to e. src keeps its side but is left holding the
// zero value of that side's type.
func (e *Either[L, R]) MoveFrom(src *Either[L, R]) {
	if e == src {
		return
	}
	if src.isRight {
		e.SetRight(take(&src.right))
	} else {
		e.SetLeft(take(&src.left))
	}
}

// Take moves the active value into a new Either. e keeps its side but is
// left holding the zero value of that side's type.
func (e *Either[L, R]) Take() Either[L, R] {
	if e.isRight {
		return Either[L, R]{right: take(&e.right), isRight: true}
	}
	return Either[L, R]{left: take(&e.left)}
}

// SetLeft assigns a left value. An existing left value is overwritten in
// place after being released; a right value is released and the side
// switches. Storing the handle e already holds releases nothing.
func (e *Either[L, R]) SetLeft(v L) {
	mustDistinct[L, R]("SetLeft")
	if e.isRight {
		release(&e.right)
		e.isRight = false
		e.left = v
		return
	}
	overwrite(&e.left, v)
}

// SetRight is the right-side counterpart of SetLeft.
func (e *Either[L, R]) SetRight(v R) {
	mustDistinct[L, R]("SetRight")
	if !e.isRight {
		release(&e.left)
		e.isRight = true
		e.right = v
		return
	}
	overwrite(&e.right, v)
}

// EmplaceLeft releases the current value and stores the one built by ctor
// as a left value.
func (e *Either[L, R]) EmplaceLeft(ctor func() L) {
	mustDistinct[L, R]("EmplaceLeft")
	e.Release()
	e.isRight = false
	e.left = ctor()
}

// EmplaceRight releases the current value and stores the one built by ctor
// as a right value.
func (e *Either[L, R]) EmplaceRight(ctor func() R) {
	mustDistinct[L, R]("EmplaceRight")
	e.Release()
	e.isRight = true
	e.right = ctor()
}

// Release frees the active value. e keeps its side and holds the zero value.
func (e *Either[L, R]) Release() {
	if e.isRight {
		release(&e.right)
	} else {
		release(&e.left)
	}
}

// Swap exchanges the contents of a and b. Values of the same side are
// swapped in place; otherwise both sides change.
func Swap[L, R any](a, b *Either[L, R]) {
	switch {
	case a == b:
	case a.isRight && b.isRight:
		a.right, b.right = b.right, a.right
	case !a.isRight && !b.isRight:
		a.left, b.left = b.left, a.left
	default:
		tmp := *a
		*a = *b
		*b = tmp
	}
}

func take[T any](v *T) T {
	out := *v
	var zero T
	*v = zero
	return out
}
