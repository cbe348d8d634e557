package bezier

import (
	"fmt"
	"iter"
	"slices"
)

// Curve is a Bézier curve of arbitrary order, defined by an ordered sequence
// of control points.
//
// The order of control points is significant: consecutive points are
// interpolated with each other. Points are never reordered.
//
// The zero value is an empty curve ready to use. A Curve must not be mutated
// concurrently with other operations on it.
type Curve[P Lerper[P]] struct {
	points []P
}

// New returns an empty curve.
func New[P Lerper[P]]() *Curve[P] {
	return &Curve[P]{}
}

// FromPoints returns a curve with the given control points. The slice is
// copied.
func FromPoints[P Lerper[P]](pts ...P) *Curve[P] {
	return &Curve[P]{points: slices.Clone(pts)}
}

// Append adds control points to the end of the curve. Each point raises the
// curve's order by one.
func (c *Curve[P]) Append(pts ...P) {
	c.points = append(c.points, pts...)
}

// Replace replaces the i'th control point. It returns an [*IndexError] if
// there is no such point.
func (c *Curve[P]) Replace(i int, pt P) error {
	if i < 0 || i >= len(c.points) {
		return &IndexError{Index: i, Len: len(c.points)}
	}
	c.points[i] = pt
	return nil
}

// Point returns the i'th control point. It returns an [*IndexError] if there
// is no such point.
func (c *Curve[P]) Point(i int) (P, error) {
	if i < 0 || i >= len(c.points) {
		return *new(P), &IndexError{Index: i, Len: len(c.points)}
	}
	return c.points[i], nil
}

// Len returns the number of control points.
func (c *Curve[P]) Len() int {
	return len(c.points)
}

// Order returns the order (or degree) of the curve, which is the number of
// control points minus one. The order is undefined for curves with fewer
// than two control points, in which case ok is false.
func (c *Curve[P]) Order() (order int, ok bool) {
	if len(c.points) < 2 {
		return 0, false
	}
	return len(c.points) - 1, true
}

// Points returns an iterator over the control points and their indices, in
// order.
func (c *Curve[P]) Points() iter.Seq2[int, P] {
	return slices.All(c.points)
}

// Clone returns a copy of the curve that doesn't share control points with c.
func (c *Curve[P]) Clone() *Curve[P] {
	return &Curve[P]{points: slices.Clone(c.points)}
}

func (c *Curve[P]) String() string {
	return fmt.Sprintf("Curve%v", c.points)
}

// Eval evaluates the curve at parameter t, using de Casteljau's algorithm.
// Generally, t is in the range [0, 1]; other values extrapolate.
//
// It returns [ErrUnderspecified] if the curve has fewer than two control
// points.
//
// Evaluation is O(n²) in the number of control points, which is fine for the
// small orders used in practice.
func (c *Curve[P]) Eval(t float64) (P, error) {
	if _, ok := c.Order(); !ok {
		return *new(P), fmt.Errorf("evaluating curve at t=%g: %w", t, ErrUnderspecified)
	}
	return c.eval(t), nil
}

// MustEval is like [Curve.Eval] but panics if the curve has fewer than two
// control points.
func (c *Curve[P]) MustEval(t float64) P {
	pt, err := c.Eval(t)
	if err != nil {
		panic(err)
	}
	return pt
}

// eval requires len(c.points) >= 2.
func (c *Curve[P]) eval(t float64) P {
	lines := make([]Line[P], len(c.points)-1)
	for i := range lines {
		lines[i] = Line[P]{c.points[i], c.points[i+1]}
	}

	// Each round replaces line i with the line between the points at t on
	// lines i and i+1, then drops the last line.
	for len(lines) > 1 {
		for i := range len(lines) - 1 {
			a := lines[i].Eval(t)
			b := lines[i+1].Eval(t)
			lines[i] = Line[P]{a, b}
		}
		lines = lines[:len(lines)-1]
	}

	return lines[0].Eval(t)
}

// Split splits the curve at parameter t into two curves of the same order.
// The first covers the parameter range [0, t] of c and the second covers
// [t, 1].
//
// It returns [ErrUnderspecified] if the curve has fewer than two control
// points.
func (c *Curve[P]) Split(t float64) (*Curve[P], *Curve[P], error) {
	n, ok := c.Order()
	if !ok {
		return nil, nil, fmt.Errorf("splitting curve at t=%g: %w", t, ErrUnderspecified)
	}

	// The control points of the two halves are the edges of the triangle
	// that de Casteljau's algorithm builds.
	left := make([]P, n+1)
	right := make([]P, n+1)
	buf := slices.Clone(c.points)
	left[0] = buf[0]
	right[n] = buf[n]
	for k := 1; k <= n; k++ {
		for i := range n + 1 - k {
			buf[i] = Line[P]{buf[i], buf[i+1]}.Eval(t)
		}
		left[k] = buf[0]
		right[n-k] = buf[n-k]
	}
	return &Curve[P]{points: left}, &Curve[P]{points: right}, nil
}

// Map returns a new curve whose control points are the results of applying
// fn to the control points of c, in order. It can change the point type, for
// example to project three-dimensional curves onto a plane.
func Map[P Lerper[P], Q Lerper[Q]](c *Curve[P], fn func(P) Q) *Curve[Q] {
	out := make([]Q, len(c.points))
	for i, pt := range c.points {
		out[i] = fn(pt)
	}
	return &Curve[Q]{points: out}
}
