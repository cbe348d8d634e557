package bezier

import "fmt"

// Rect is an axis-aligned rectangle spanning from (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// ControlBox returns the smallest (axis-aligned) rectangle that encloses the
// control points of c. A Bézier curve lies within the convex hull of its
// control points, so the box also encloses the curve for t ∈ [0, 1].
//
// The box of a curve without control points is the zero rectangle.
func ControlBox(c *Curve[Point]) Rect {
	if c.Len() == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(c.points[0], c.points[0])
	for _, pt := range c.points[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", r.X0, r.X1, r.Y0, r.Y1)
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// UnionPoint grows r, which must have non-negative width and height, to
// include pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}
