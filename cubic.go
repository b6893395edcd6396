package bezier

// CubicBez is a cubic Bézier curve.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (CubicBez) curve()    {}
func (CubicBez) bakeable() {}

func (c CubicBez) Degree() int { return 3 }

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve in Bernstein form,
// P0·(1−t)³ + P1·3(1−t)²t + P2·3(1−t)t² + P3·t³.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := c.P0.Mul(mt * mt * mt)
	b := c.P1.Mul(3 * mt * mt * t)
	cc := c.P2.Mul(3 * mt * t * t)
	d := c.P3.Mul(t * t * t)
	return a.Add(b).Add(cc).Add(d)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Differentiate returns the derivative, which is a quadratic Bézier.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		c.P1.Sub(c.P0).Mul(3),
		c.P2.Sub(c.P1).Mul(3),
		c.P3.Sub(c.P2).Mul(3),
	}
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		// power basis of the derivative
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := QuadraticRoots(a, b, c)
		for _, t := range roots[:n] {
			if isUnitInterior(t) {
				out[outN] = t
				outN++
			}
		}
	}

	d := c.Differentiate()
	oneCoord(d.P0.X, d.P1.X, d.P2.X)
	oneCoord(d.P0.Y, d.P1.Y, d.P2.Y)
	sortExtrema(&out, outN)
	return out, outN
}

// BoundingBox implements [Curve].
func (c CubicBez) BoundingBox() Rect {
	return BoundingBox(c)
}

// Curvature returns the signed curvature at t. See [QuadBez.Curvature] for
// the conventions.
func (c CubicBez) Curvature(t float64) float64 {
	d := c.Differentiate()
	return curvature(d.Eval(t), d.Differentiate().Eval(t))
}
