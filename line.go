package bezier

// Line represents a line segment, the linear Bézier curve. Lines mostly
// appear as derivatives of quadratic Béziers.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (Line) curve() {}

func (l Line) Degree() int { return 1 }

// Eval evaluates the line at t as P0·(1−t) + P1·t.
func (l Line) Eval(t float64) Point {
	mt := 1.0 - t
	return l.P0.Mul(mt).Add(l.P1.Mul(t))
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Differentiate returns the constant derivative P1 − P0.
func (l Line) Differentiate() Point {
	return l.P1.Sub(l.P0)
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Curvature returns 0, as lines have zero acceleration.
func (l Line) Curvature(t float64) float64 {
	return 0
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Reversed() Line {
	return Line{l.P1, l.P0}
}
