package either

// Go methods cannot declare their own type parameters, so the forms of the
// API selected by a variant type are package-level functions. T must be L or
// R; anything else panics with ErrNotVariant.

// Is reports whether e currently holds a T.
func Is[T, L, R any](e *Either[L, R]) bool {
	return sideOf[T, L, R]("Is") == e.Side()
}

// GetPointer returns a pointer to the stored T, or nil if e holds the other
// side.
func GetPointer[T, L, R any](e *Either[L, R]) *T {
	if sideOf[T, L, R]("GetPointer") == SideLeft {
		if e.isRight {
			return nil
		}
		return any(&e.left).(*T)
	}
	if !e.isRight {
		return nil
	}
	return any(&e.right).(*T)
}

// Get returns the stored T. It panics if e holds the other side.
func Get[T, L, R any](e *Either[L, R]) T {
	want := sideOf[T, L, R]("Get")
	if want != e.Side() {
		panic(wrongSide("Get", want, e.Side()))
	}
	if want == SideLeft {
		return *any(&e.left).(*T)
	}
	return *any(&e.right).(*T)
}

// Assign stores v on the side whose type is T, following the same rules as
// SetLeft and SetRight.
func Assign[T, L, R any](e *Either[L, R], v T) {
	if sideOf[T, L, R]("Assign") == SideLeft {
		e.SetLeft(convert[T, L](v))
	} else {
		e.SetRight(convert[T, R](v))
	}
}

// Emplace releases the current value of e and stores the T built by ctor.
func Emplace[T, L, R any](e *Either[L, R], ctor func() T) {
	if sideOf[T, L, R]("Emplace") == SideLeft {
		e.EmplaceLeft(func() L { return convert[T, L](ctor()) })
	} else {
		e.EmplaceRight(func() R { return convert[T, R](ctor()) })
	}
}

// Emplaced creates an Either holding the T built by ctor.
func Emplaced[T, L, R any](ctor func() T) Either[L, R] {
	var e Either[L, R]
	if sideOf[T, L, R]("Emplaced") == SideLeft {
		e.left = convert[T, L](ctor())
	} else {
		e.right = convert[T, R](ctor())
		e.isRight = true
	}
	return e
}

// convert reinterprets v as U; callers guarantee T and U are the same type.
// Going through a pointer keeps nil interface values intact.
func convert[T, U any](v T) U {
	return *any(&v).(*U)
}
