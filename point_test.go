package bezier

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/fixed"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Add(Pt(-10, 0)))
	diff(t, Pt(2, 3), Pt(5, 7).Sub(Pt(3, 4)))
	diff(t, Pt(3, -6), Pt(1, -2).Mul(3))
	diff(t, Pt(-1, 2), Pt(1, -2).Negate())

	got, err := Pt(3, -6).Div(3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(1, -2), got)

	if _, err := Pt(1, 1).Div(0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("got error %v, want %v", err, ErrDivideByZero)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
	if l := Pt(3, 4).Hypot(); l != 5 {
		t.Errorf("got length %v, want 5", l)
	}
}

func TestPointNormalize(t *testing.T) {
	n, err := Pt(3, 4).Normalize()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(0.6, 0.8), n, cmpopts.EquateApprox(0, 1e-15))

	if _, err := (Point{}).Normalize(); !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateVector)
	}

	// Tiny but non-zero vectors are still normalizable.
	n, err = Pt(1e-300, 0).Normalize()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(1, 0), n, cmpopts.EquateApprox(0, 1e-15))
}

func TestPointPerp(t *testing.T) {
	diff(t, Pt(-2, 1), Pt(1, 2).Perp())
	if d := Pt(1, 2).Dot(Pt(1, 2).Perp()); d != 0 {
		t.Errorf("perpendicular vector has dot product %v", d)
	}
	if c := Pt(1, 0).Cross(Pt(1, 0).Perp()); c != 1 {
		t.Errorf("got cross product %v, want 1", c)
	}
}

func TestPointRotate(t *testing.T) {
	const epsilon = 1e-12
	assertNear(t, Pt(1, 0).Rotate(math.Pi/2), Pt(0, 1), epsilon)
	assertNear(t, Pt(1, 2).Rotate(math.Pi/2), Pt(1, 2).Perp(), epsilon)
	assertNear(t, Pt(3, 4).Rotate(math.Pi), Pt(-3, -4), epsilon)
	if a := Pt(0, 2).Angle(); a != math.Pi/2 {
		t.Errorf("got angle %v, want %v", a, math.Pi/2)
	}
}

func TestPointClampLength(t *testing.T) {
	diff(t, Pt(1, 1), Pt(1, 1).ClampLength(2))
	diff(t, Pt(3, 4).Mul(0.2), Pt(3, 4).ClampLength(1), cmpopts.EquateApprox(0, 1e-15))
}

func TestPointLerp(t *testing.T) {
	a, b := Pt(1, 2), Pt(5, -2)
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
	diff(t, Pt(3, 0), a.Lerp(b, 0.5))
	diff(t, Pt(3, 0), a.Midpoint(b))
}

func TestPointApproxEqual(t *testing.T) {
	if !Pt(1, 1).ApproxEqual(Pt(1+1e-10, 1-1e-10), 1e-9) {
		t.Error("points should be approximately equal")
	}
	if Pt(1, 1).ApproxEqual(Pt(1, 1.1), 1e-9) {
		t.Error("points shouldn't be approximately equal")
	}
}

func TestPointIsInfNaN(t *testing.T) {
	if Pt(0, 0).IsInf() || Pt(0, 0).IsNaN() {
		t.Error("origin reported as non-finite")
	}
	if !Pt(math.Inf(-1), 0).IsInf() {
		t.Error("infinite point not reported")
	}
	if !Pt(0, math.NaN()).IsNaN() {
		t.Error("NaN point not reported")
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(1, 0.5).String(); s != "(1, 0.5)" {
		t.Errorf("got %q", s)
	}
}

func TestPointFixed(t *testing.T) {
	p := Pt(1.5, -2.25)
	f := p.Fixed()
	if want := (fixed.Point26_6{X: 96, Y: -144}); f != want {
		t.Errorf("got %v, want %v", f, want)
	}
	diff(t, p, PtFromFixed(f))

	// Rounds to the nearest 1/64.
	if f := Pt(1.0/128+1e-9, 0).Fixed(); f.X != 1 {
		t.Errorf("got %v, want 1", f.X)
	}
}
