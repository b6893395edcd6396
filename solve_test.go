package bezier

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestQuadraticRoots(t *testing.T) {
	tests := []struct {
		a, b, c float64
		want    []float64
	}{
		{1, -3, 2, []float64{2, 1}},
		{-1, 3, -2, []float64{1, 2}},
		{1, 0, -4, []float64{2, -2}},
		{1, 0, 1, nil},              // negative discriminant
		{0, 0, 1, nil},              // no solution
		{0, 0, 0, nil},              // every t is a solution
		{1e-12, 1e-12, 5, nil},      // both below epsilon
		{0, 2, -1, []float64{0.5}},  // linear
		{1e-10, 2, -1, []float64{0.5}},
		{1, -2, 1, []float64{1, 1}}, // double root
	}
	for _, tt := range tests {
		roots, n := QuadraticRoots(tt.a, tt.b, tt.c)
		if n != len(tt.want) {
			t.Errorf("QuadraticRoots(%g, %g, %g): got %v, want %v", tt.a, tt.b, tt.c, roots[:n], tt.want)
			continue
		}
		for i, want := range tt.want {
			if got := roots[i]; math.Abs(got-want) > 1e-12 {
				t.Errorf("QuadraticRoots(%g, %g, %g): root %d is %v, want %v", tt.a, tt.b, tt.c, i, got, want)
			}
		}
	}
}

func TestQuadraticRootsSatisfyEquation(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		a := r.Float64()*20 - 10
		b := r.Float64()*20 - 10
		c := r.Float64()*20 - 10
		roots, n := QuadraticRoots(a, b, c)
		if d := b*b - 4*a*c; d >= 0 && n != 2 {
			t.Errorf("QuadraticRoots(%g, %g, %g): got %d roots for discriminant %g", a, b, c, n, d)
		}
		for _, x := range roots[:n] {
			scale := math.Abs(a*x*x) + math.Abs(b*x) + math.Abs(c)
			if v := a*x*x + b*x + c; math.Abs(v) > 1e-9*(scale+1) {
				t.Errorf("QuadraticRoots(%g, %g, %g): root %g evaluates to %g", a, b, c, x, v)
			}
		}
	}
}

func TestLinearRoot(t *testing.T) {
	if x, ok := LinearRoot(2, -2); !ok || x != 0.5 {
		t.Errorf("got (%v, %v), want (0.5, true)", x, ok)
	}
	if x, ok := LinearRoot(1, 3); !ok || x != -0.5 {
		t.Errorf("got (%v, %v), want (-0.5, true)", x, ok)
	}
	if _, ok := LinearRoot(2, 2); ok {
		t.Error("constant function reported a root")
	}
	if _, ok := LinearRoot(1, 1+1e-12); ok {
		t.Error("nearly constant function reported a root")
	}
}
