package bezier

import (
	"math"
	"testing"
)

func TestLineEval(t *testing.T) {
	l := Line{Pt(0.3, 0.7), Pt(-2.9, 11.1)}
	diff(t, l.P0, l.Eval(0))
	diff(t, l.P1, l.Eval(1))
	assertNear(t, l.Eval(0.25), l.P0.Lerp(l.P1, 0.25), 1e-12)
	// Parameters outside [0, 1] extrapolate.
	assertNear(t, Line{Pt(0, 0), Pt(1, 2)}.Eval(2), Pt(2, 4), 1e-12)
}

func TestLineBoundingBox(t *testing.T) {
	l := Line{Pt(0, 0), Pt(4, 0)}
	diff(t, Rect{0, 0, 4, 0}, l.BoundingBox())
	diff(t, Rect{0, 0, 4, 0}, l.Reversed().BoundingBox())
	diff(t, Rect{-1, -3, 2, 5}, Line{Pt(2, -3), Pt(-1, 5)}.BoundingBox())
}

func TestLineCurvature(t *testing.T) {
	l := Line{Pt(0, 0), Pt(4, 0)}
	for i := range 11 {
		if k := l.Curvature(float64(i) / 10); k != 0 {
			t.Errorf("got curvature %v, want 0", k)
		}
	}
}

func TestLineDifferentiate(t *testing.T) {
	l := Line{Pt(1, 1), Pt(4, 5)}
	diff(t, Pt(3, 4), l.Differentiate())
	if d := l.Length(); d != 5 {
		t.Errorf("got length %v, want 5", d)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}
