package bezier

import "math"

// MaxExtrema is the maximum number of extrema that can be reported by
// [Curve.Extrema].
//
// This is 4 to support cubic Béziers, which have up to two extrema per axis.
const MaxExtrema = 4

// Curve is a Bézier curve of degree 1, 2 or 3, evaluated at t ∈ [0, 1].
//
// The set of curves is closed: only [Line], [QuadBez] and [CubicBez]
// implement Curve, so that functions such as [Derivative] can switch over
// all of them exhaustively.
type Curve interface {
	// Eval evaluates the curve at parameter t. Values of t outside [0, 1]
	// extrapolate the curve's polynomial.
	Eval(t float64) Point
	Start() Point
	End() Point
	// Degree returns the polynomial degree of the curve.
	Degree() int

	// Extrema computes the extrema of the curve.
	//
	// Only extrema within the interior of the curve count. The extrema are
	// reported in increasing parameter order.
	Extrema() ([MaxExtrema]float64, int)
	BoundingBox() Rect
	// Curvature returns the signed curvature at t. See [QuadBez.Curvature].
	Curvature(t float64) float64

	curve()
}

// Bakeable is the subset of curves that support arc-length tables. Lines are
// excluded; their parameter is already proportional to arc length.
type Bakeable interface {
	Curve
	bakeable()
}

var (
	_ Curve    = Line{}
	_ Bakeable = QuadBez{}
	_ Bakeable = CubicBez{}
)

// BoundingBox returns the smallest (axis-aligned) rectangle that encloses the
// curve in the range [0, 1].
//
// An axis extremum of a polynomial curve occurs either at an end point or
// where that axis' derivative vanishes, which makes this box exact.
func BoundingBox(c Curve) Rect {
	bbox := NewRectFromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// ExtremaRanges returns parameter ranges, each of which is monotonic within the
// range.
func ExtremaRanges(c Curve) ([MaxExtrema + 1][2]float64, int) {
	var ret [MaxExtrema + 1][2]float64
	var retN int
	var t0 float64

	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		ret[retN] = [2]float64{t0, t}
		retN++
		t0 = t
	}
	ret[retN] = [2]float64{t0, 1}
	retN++
	return ret, retN
}

// Derivative returns the derivative of c as a curve of the next lower degree.
//
// The derivative of a line is constant; it is returned as a line whose end
// points are both that constant.
func Derivative(c Curve) Curve {
	switch c := c.(type) {
	case Line:
		d := c.Differentiate()
		return Line{d, d}
	case QuadBez:
		return c.Differentiate()
	case CubicBez:
		return c.Differentiate()
	default:
		panic("unreachable")
	}
}

// curvature computes the signed curvature from velocity v and acceleration a.
// Stationary points report zero, as curvature isn't defined there.
func curvature(v, a Point) float64 {
	speed := v.Hypot()
	if speed == 0 {
		return 0
	}
	return v.Cross(a) / (speed * speed * speed)
}

// sortExtrema sorts up to MaxExtrema values in place.
func sortExtrema(ex *[MaxExtrema]float64, n int) {
	for i := 1; i < n; i++ {
		for j := i; j > 0 && ex[j-1] > ex[j]; j-- {
			ex[j-1], ex[j] = ex[j], ex[j-1]
		}
	}
}

// isUnitInterior reports whether t lies strictly within (0, 1).
func isUnitInterior(t float64) bool {
	return t > 0 && t < 1 && !math.IsNaN(t)
}
