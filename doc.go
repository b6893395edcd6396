// Package bezier evaluates 2D linear, quadratic and cubic Bézier curves. It
// provides evaluation in Bernstein form, closed-form derivatives, exact
// bounding boxes, signed curvature, and traversal at constant speed via
// baked arc-length tables.
//
// # Curves
//
// [Curve] is a closed set of three types: [Line], [QuadBez] and [CubicBez].
// Curves are plain values built from their control points and are evaluated
// at a parameter t, which is meaningful in [0, 1]. Values outside that range
// extrapolate the curve's polynomial.
//
// Differentiating a curve yields the curve of the next lower degree: the
// derivative of a [CubicBez] is a [QuadBez], that of a [QuadBez] is a
// [Line], and that of a [Line] is a constant vector.
//
// # Bounding boxes
//
// [BoundingBox] is exact rather than sampled. An axis extremum of a
// polynomial curve occurs either at an end point or where that axis'
// derivative is zero, so the box is the union of the end points and the
// points at the roots of the derivative in (0, 1).
//
// # Arc length
//
// A curve's parameter t doesn't advance at constant speed along the curve.
// [Bake] samples a curve and records the accumulated chord length in a
// table. The resulting [BakedCurve] maps a fraction u of the total length
// back to t with [BakedCurve.ParamAtFraction], allowing even spacing of
// points along the curve with [BakedCurve.EvalUniform] and
// [BakedCurve.UniformPoints]. Baking is explicit: it costs O(steps), and
// lookups cost O(log steps).
//
// A [BakedCurve] is separate from the curve it was made from. Curves can
// only be traversed by arc length once baked, and neither curves nor baked
// curves change after construction, which makes both safe for concurrent
// use.
//
// # Numerical robustness
//
// Derivative coefficients of Béziers often vanish exactly or nearly for
// straight or axis-aligned segments. Root finding treats coefficients
// smaller than [Epsilon] as zero and reports no roots instead of producing
// infinities. Curvature at points of zero velocity is reported as 0.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Bernstein polynomial]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Bernstein polynomial]: https://en.wikipedia.org/wiki/Bernstein_polynomial
package bezier
