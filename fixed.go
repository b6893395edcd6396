package bezier

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed converts pt to a 26.6 fixed-point point, as used by
// golang.org/x/image/font and rasterizers built on it. Coordinates are
// rounded to the nearest 1/64.
func (pt Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(pt.X * 64)),
		Y: fixed.Int26_6(math.Round(pt.Y * 64)),
	}
}

// PtFromFixed converts a 26.6 fixed-point point to a Point.
func PtFromFixed(p fixed.Point26_6) Point {
	return Point{
		X: float64(p.X) / 64,
		Y: float64(p.Y) / 64,
	}
}
