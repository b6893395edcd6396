package bezier

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// DefaultBakeSteps is a reasonable number of steps for [Bake] for curves that
// span a few hundred units, as is common in 2D graphics.
const DefaultBakeSteps = 32

// ArcSample is one entry of an arc-length table: the parameter T and the
// approximate arc length from the start of the curve to T.
type ArcSample struct {
	T      float64
	Length float64
}

// BakedCurve is a curve together with a table that maps arc length to curve
// parameter. It is produced by [Bake] and is immutable, so it is safe for
// concurrent use.
//
// The zero value is not baked; its arc-length lookups return [ErrNotBaked].
type BakedCurve[C Bakeable] struct {
	curve  C
	table  []ArcSample
	length float64
}

// Bake samples c at steps+1 equally spaced parameters and accumulates the
// chord lengths between consecutive samples, producing a table for
// arc-length parameterization.
//
// The table is a piecewise linear approximation of arc length. The baked
// length never exceeds the true length and converges to it as steps grows.
// There is no adaptive refinement; callers needing tighter tolerances must
// pick a larger number of steps.
//
// Bake returns an error wrapping [ErrInvalidSteps] if steps is less than 1.
func Bake[C Bakeable](c C, steps int) (*BakedCurve[C], error) {
	if steps < 1 {
		return nil, fmt.Errorf("bake with %d steps: %w", steps, ErrInvalidSteps)
	}
	table, length := buildArcTable(c, steps)
	Logger().Debug("baked curve",
		slog.Int("degree", c.Degree()),
		slog.Int("steps", steps),
		slog.Float64("arclen", length))
	if length == 0 {
		Logger().Warn("baked curve has zero length",
			slog.Int("degree", c.Degree()),
			slog.String("start", c.Start().String()))
	}
	return &BakedCurve[C]{
		curve:  c,
		table:  table,
		length: length,
	}, nil
}

func buildArcTable(c Curve, steps int) ([]ArcSample, float64) {
	table := make([]ArcSample, 1, steps+1)
	table[0] = ArcSample{0, 0}
	prev := c.Eval(0)
	var length float64
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pt := c.Eval(t)
		length += pt.Distance(prev)
		table = append(table, ArcSample{t, length})
		prev = pt
	}
	return table, length
}

// Rebake returns a new baked curve for the same curve with a different
// number of steps. The receiver is left unchanged.
func (b *BakedCurve[C]) Rebake(steps int) (*BakedCurve[C], error) {
	return Bake(b.curve, steps)
}

// Curve returns the curve that was baked.
func (b *BakedCurve[C]) Curve() C {
	return b.curve
}

// Baked reports whether b holds an arc-length table.
func (b *BakedCurve[C]) Baked() bool {
	return b != nil && len(b.table) > 0
}

// Steps returns the number of steps the curve was baked with, or 0 if it is
// not baked.
func (b *BakedCurve[C]) Steps() int {
	if !b.Baked() {
		return 0
	}
	return len(b.table) - 1
}

// Arclen returns the baked arc length of the curve.
func (b *BakedCurve[C]) Arclen() float64 {
	if !b.Baked() {
		return 0
	}
	return b.length
}

// Table returns a copy of the arc-length table.
func (b *BakedCurve[C]) Table() []ArcSample {
	if !b.Baked() {
		return nil
	}
	return slices.Clone(b.table)
}

// Eval evaluates the underlying curve at parameter t.
func (b *BakedCurve[C]) Eval(t float64) Point {
	return b.curve.Eval(t)
}

// ParamAtFraction returns the parameter at which the baked arc length from
// the start of the curve is u times the total baked length. u is clamped to
// [0, 1]; 0 and 1 map to the end points exactly.
func (b *BakedCurve[C]) ParamAtFraction(u float64) (float64, error) {
	if !b.Baked() {
		return 0, ErrNotBaked
	}
	if u <= 0 {
		return 0, nil
	}
	if u >= 1 {
		return 1, nil
	}
	return b.paramAt(u * b.length), nil
}

// ParamAtLength returns the parameter at which the baked arc length from the
// start of the curve is s. s is clamped to [0, Arclen()].
func (b *BakedCurve[C]) ParamAtLength(s float64) (float64, error) {
	if !b.Baked() {
		return 0, ErrNotBaked
	}
	return b.paramAt(s), nil
}

func (b *BakedCurve[C]) paramAt(s float64) float64 {
	if s <= 0 {
		return 0
	}
	if s >= b.length {
		return 1
	}

	// Invariant: table[lo].Length < s <= table[hi].Length
	lo := 0
	hi := len(b.table) - 1
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if b.table[mid].Length < s {
			lo = mid
		} else {
			hi = mid
		}
	}

	s0, s1 := b.table[lo], b.table[hi]
	return s0.T + (s-s0.Length)*(s1.T-s0.T)/(s1.Length-s0.Length)
}

// EvalUniform evaluates the curve at the point whose baked arc length from
// the start is u times the total length. Stepping u uniformly traverses the
// curve at (approximately) constant speed.
func (b *BakedCurve[C]) EvalUniform(u float64) (Point, error) {
	t, err := b.ParamAtFraction(u)
	if err != nil {
		return Point{}, err
	}
	return b.curve.Eval(t), nil
}

// UniformPoints returns an iterator over n+1 points spaced evenly by arc
// length, from the start to the end of the curve. It yields nothing if b is
// not baked or n is less than 1.
func (b *BakedCurve[C]) UniformPoints(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !b.Baked() || n < 1 {
			return
		}
		for i := range n + 1 {
			u := float64(i) / float64(n)
			t, _ := b.ParamAtFraction(u)
			if !yield(b.curve.Eval(t)) {
				return
			}
		}
	}
}
