package bezier

// QuadBez is a quadratic Bézier curve.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (QuadBez) curve()    {}
func (QuadBez) bakeable() {}

func (q QuadBez) Degree() int { return 2 }

// Eval evaluates the curve in Bernstein form,
// P0·(1−t)² + P1·2(1−t)t + P2·t².
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := q.P0.Mul(mt * mt)
	b := q.P1.Mul(2 * mt * t)
	c := q.P2.Mul(t * t)
	return a.Add(b).Add(c)
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// Differentiate returns the derivative, which is a line.
func (q QuadBez) Differentiate() Line {
	return Line{
		q.P1.Sub(q.P0).Mul(2),
		q.P2.Sub(q.P1).Mul(2),
	}
}

func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.
	var out [MaxExtrema]float64
	var outN int
	d := q.Differentiate()
	if t, ok := LinearRoot(d.P0.X, d.P1.X); ok && isUnitInterior(t) {
		out[outN] = t
		outN++
	}
	if t, ok := LinearRoot(d.P0.Y, d.P1.Y); ok && isUnitInterior(t) {
		out[outN] = t
		outN++
	}
	sortExtrema(&out, outN)
	return out, outN
}

func (q QuadBez) BoundingBox() Rect {
	return BoundingBox(q)
}

// Curvature returns the signed curvature at t, cross(v, a) / |v|³, where v
// and a are the first and second derivatives. The sign is positive where the
// curve turns from the positive x axis towards the positive y axis.
//
// At stationary points, where the first derivative vanishes, curvature is
// undefined and Curvature returns 0.
func (q QuadBez) Curvature(t float64) float64 {
	d := q.Differentiate()
	return curvature(d.Eval(t), d.Differentiate())
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}
