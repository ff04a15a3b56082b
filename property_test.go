package either_test

import (
	"testing"

	"github.com/authcorp/libs/go/either"
	"github.com/authcorp/libs/go/either/eithertest"
	"pgregory.net/rapid"
)

func boolOrFloat() *rapid.Generator[either.Either[bool, float64]] {
	return eithertest.EitherGen(rapid.Bool(), rapid.Float64Range(-1e9, 1e9))
}

func intOrString() *rapid.Generator[either.Either[int, string]] {
	return eithertest.EitherGen(rapid.Int(), rapid.String())
}

// exactlyOneSide checks the discriminant and the pointer accessors agree.
func exactlyOneSide[L, R any](t *rapid.T, e *either.Either[L, R]) {
	if e.IsLeft() == e.IsRight() {
		t.Fatalf("IsLeft=%v IsRight=%v", e.IsLeft(), e.IsRight())
	}
	if (e.LeftPtr() != nil) != e.IsLeft() || (e.RightPtr() != nil) != e.IsRight() {
		t.Fatalf("pointer accessors disagree with side %s", e.Side())
	}
}

func TestPropertyConstructionRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := rapid.Int().Draw(t, "l")
		r := rapid.String().Draw(t, "r")

		left := either.Left[int, string](l)
		right := either.Right[int](r)

		exactlyOneSide(t, &left)
		exactlyOneSide(t, &right)

		if !left.IsLeft() || left.Left() != l {
			t.Fatalf("Left(%d) = %v", l, left)
		}
		if !right.IsRight() || right.Right() != r {
			t.Fatalf("Right(%q) = %v", r, right)
		}
	})
}

func TestPropertyExactlyOneSideAfterMutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := intOrString().Draw(t, "e")
		steps := rapid.IntRange(0, 20).Draw(t, "steps")

		for range steps {
			switch rapid.IntRange(0, 5).Draw(t, "op") {
			case 0:
				e.Set(intOrString().Draw(t, "other"))
			case 1:
				e.SetLeft(rapid.Int().Draw(t, "l"))
			case 2:
				e.SetRight(rapid.String().Draw(t, "r"))
			case 3:
				v := rapid.Int().Draw(t, "l")
				e.EmplaceLeft(func() int { return v })
			case 4:
				v := rapid.String().Draw(t, "r")
				either.Emplace(&e, func() string { return v })
			case 5:
				other := intOrString().Draw(t, "other")
				e.MoveFrom(&other)
			}
			exactlyOneSide(t, &e)
		}
	})
}

func TestPropertyCopyPreservesSideAndValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := boolOrFloat().Draw(t, "a")
		before := a

		b := a.Clone()
		if b.Side() != a.Side() || !either.Equal(a, b) {
			t.Fatalf("clone %v of %v", b, a)
		}
		if a != before {
			t.Fatalf("source modified: %v -> %v", before, a)
		}
	})
}

func TestPropertyMoveKeepsSourceSide(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := intOrString().Draw(t, "a")
		orig := a

		b := a.Take()
		if b != orig {
			t.Fatalf("moved value %v, want %v", b, orig)
		}
		if a.Side() != orig.Side() {
			t.Fatalf("source side changed to %s", a.Side())
		}
		if a.IsLeft() && a.Left() != 0 {
			t.Fatalf("moved-from left not zero: %v", a)
		}
		if a.IsRight() && a.Right() != "" {
			t.Fatalf("moved-from right not zero: %v", a)
		}
	})
}

func TestPropertyEmplaceSelectsSide(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := boolOrFloat().Draw(t, "e")

		if rapid.Bool().Draw(t, "toLeft") {
			either.Emplace(&e, func() bool { return true })
			if !either.Is[bool](&e) {
				t.Fatal("Emplace[bool] did not select left")
			}
		} else {
			either.Emplace(&e, func() float64 { return 1 })
			if !either.Is[float64](&e) {
				t.Fatal("Emplace[float64] did not select right")
			}
		}
	})
}

func TestPropertyEquality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := intOrString().Draw(t, "a")
		b := intOrString().Draw(t, "b")

		if !either.Equal(a, a) {
			t.Fatalf("not reflexive: %v", a)
		}
		if either.Equal(a, b) != either.Equal(b, a) {
			t.Fatalf("not symmetric: %v %v", a, b)
		}
		if a.Side() != b.Side() && either.Equal(a, b) {
			t.Fatalf("different sides compare equal: %v %v", a, b)
		}
		if either.Equal(a, b) != (a == b) {
			t.Fatalf("Equal and == disagree: %v %v", a, b)
		}
	})
}

func TestPropertyCrossSideNeverEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 1).Draw(t, "n")

		// Both hold the numeric value n but on different sides.
		a := either.Left[int, float64](n)
		b := either.Right[int](float64(n))
		if either.Equal(a, b) {
			t.Fatalf("%v == %v", a, b)
		}
	})
}

func TestPropertyFoldRunsExactlyOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := boolOrFloat().Draw(t, "e")

		var lefts, rights int
		got := either.Fold(e,
			func(bool) string { lefts++; return "left" },
			func(float64) string { rights++; return "right" },
		)

		if lefts+rights != 1 {
			t.Fatalf("lefts=%d rights=%d", lefts, rights)
		}
		if e.IsLeft() != (got == "left") {
			t.Fatalf("Fold(%v) = %s", e, got)
		}
	})
}

func TestPropertySwap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := intOrString().Draw(t, "a")
		b := intOrString().Draw(t, "b")
		origA, origB := a, b

		either.Swap(&a, &b)

		if a != origB || b != origA {
			t.Fatalf("Swap(%v, %v) = %v, %v", origA, origB, a, b)
		}
		exactlyOneSide(t, &a)
		exactlyOneSide(t, &b)
	})
}

func TestPropertyFlipTwiceIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := intOrString().Draw(t, "e")
		if e.Flip().Flip() != e {
			t.Fatalf("Flip(Flip(%v)) != %v", e, e)
		}
	})
}
