// Package bezier evaluates Bézier curves of arbitrary order using de
// Casteljau's algorithm.
//
// # Control points
//
// A [Curve] is an ordered sequence of control points of a single type. The
// only requirement on that type is that it can be linearly interpolated with
// itself, which is described by [Lerper]. This makes the engine agnostic to
// dimensionality. The package includes the following point types:
//   - [Point], two-dimensional and double precision, the common case
//   - [Point32], two-dimensional and single precision
//   - [Point3], three-dimensional
//   - [Vec2], a two-dimensional vector
//   - [Scalar], a single number, for curves of one variable such as easing
//     functions
//
// The order of a curve is its number of control points minus one. Curves with
// fewer than two control points have no order and cannot be evaluated;
// attempting to do so returns [ErrUnderspecified].
//
// # Evaluation
//
// [Curve.Eval] computes the point at parameter t by repeatedly interpolating
// between adjacent points of the control polygon until a single point
// remains. This costs O(n²) interpolations for n control points, which is of
// no concern for the orders used in practice. Parameters are conventionally
// in [0, 1]; other values extrapolate.
//
// [QuadBez] and [CubicBez] evaluate the two most common orders in closed form
// and convert to and from general curves.
//
// # Sampling
//
// A [Sampler] walks a curve at a fixed parametric step, starting at t = 0 and
// always ending at exactly t = 1. [Curve.Samples] provides the same sequence
// as an iterator, and [Polyline] turns sampled points into SVG path data.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bezier
