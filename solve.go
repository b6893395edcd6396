package bezier

import "math"

// Epsilon is the tolerance below which a polynomial coefficient or
// denominator is treated as zero during root finding.
//
// Bézier derivative coefficients frequently vanish exactly or nearly so for
// axis-aligned or straight segments. Raising Epsilon makes root finding more
// robust against such segments at the cost of ignoring genuine extrema of
// very flat curves.
const Epsilon = 1e-9

// QuadraticRoots finds the real roots of a·t² + b·t + c = 0.
//
// If a is within [Epsilon] of zero, the equation is solved as linear; if b is
// near zero as well, no roots are reported, regardless of whether none or all
// values of t satisfy the equation. Otherwise the roots
// (−b+√d)/(2a) and (−b−√d)/(2a) are returned in that order, where d is the
// discriminant. A double root is reported twice.
//
// The second return value states how many roots were found.
func QuadraticRoots(a, b, c float64) ([2]float64, int) {
	if math.Abs(a) < Epsilon {
		if math.Abs(b) < Epsilon {
			return [2]float64{}, 0
		}
		return [2]float64{-c / b}, 1
	}
	d := b*b - 4*a*c
	if d < 0 {
		return [2]float64{}, 0
	}
	s := math.Sqrt(d)
	return [2]float64{
		(-b + s) / (2 * a),
		(-b - s) / (2 * a),
	}, 2
}

// LinearRoot finds the parameter at which the linear Bézier with end values a
// and b crosses zero, that is, the t solving a·(1−t) + b·t = 0. It reports
// false if a and b are within [Epsilon] of each other, in which case the
// function is constant.
func LinearRoot(a, b float64) (float64, bool) {
	denom := a - b
	if math.Abs(denom) < Epsilon {
		return 0, false
	}
	return a / denom, true
}
