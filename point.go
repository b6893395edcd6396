package bezier

import (
	"fmt"
	"math"
)

// Point is a point in 2D space. The same type is used for displacement
// vectors, such as derivatives, so arithmetic on points yields points.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Splat returns the point's x and y coordinates.
func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add returns pt+o.
func (pt Point) Add(o Point) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub returns pt−o.
func (pt Point) Sub(o Point) Point {
	return Point{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

func (pt Point) Mul(f float64) Point {
	return Point{
		X: pt.X * f,
		Y: pt.Y * f,
	}
}

// Div divides both coordinates by f. It returns [ErrDivideByZero] if f is
// zero.
func (pt Point) Div(f float64) (Point, error) {
	if f == 0 {
		return Point{}, ErrDivideByZero
	}
	return Point{
		X: pt.X / f,
		Y: pt.Y / f,
	}, nil
}

// Negate returns a new point with the signs of x and y flipped.
func (pt Point) Negate() Point {
	return Point{
		X: -pt.X,
		Y: -pt.Y,
	}
}

// Dot returns the dot product of pt and o.
func (pt Point) Dot(o Point) float64 {
	return pt.X*o.X + pt.Y*o.Y
}

// Cross returns the z component of the cross product of pt and o, also known
// as the 2D determinant.
func (pt Point) Cross(o Point) float64 {
	return pt.X*o.Y - pt.Y*o.X
}

// Hypot returns the magnitude of the vector from the origin to pt.
func (pt Point) Hypot() float64 {
	return math.Hypot(pt.X, pt.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Point.Hypot].
func (pt Point) Hypot2() float64 {
	return pt.Dot(pt)
}

// Normalize returns a vector of magnitude 1.0 with the same angle as pt. It
// returns [ErrDegenerateVector] if the magnitude is exactly zero.
func (pt Point) Normalize() (Point, error) {
	l := pt.Hypot()
	if l == 0 {
		return Point{}, ErrDegenerateVector
	}
	return pt.Mul(1.0 / l), nil
}

// Perp returns pt rotated by 90° counter-clockwise (in a y-up space), that
// is, (−y, x).
func (pt Point) Perp() Point {
	return Point{
		X: -pt.Y,
		Y: pt.X,
	}
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the
// positive y direction. This is atan2(y, x).
func (pt Point) Angle() float64 {
	return math.Atan2(pt.Y, pt.X)
}

// Rotate rotates the vector by th radians about the origin.
func (pt Point) Rotate(th float64) Point {
	sin, cos := math.Sincos(th)
	return Point{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// ClampLength returns pt scaled down to a magnitude of at most max. Vectors
// that are already short enough are returned unchanged.
func (pt Point) ClampLength(max float64) Point {
	l := pt.Hypot()
	if l <= max {
		return pt
	}
	return pt.Mul(max / l)
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X + (o.X-pt.X)*t,
		Y: pt.Y + (o.Y-pt.Y)*t,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// ApproxEqual reports whether both coordinates of pt and o differ by at most
// epsilon.
func (pt Point) ApproxEqual(o Point, epsilon float64) bool {
	return math.Abs(pt.X-o.X) <= epsilon && math.Abs(pt.Y-o.Y) <= epsilon
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
