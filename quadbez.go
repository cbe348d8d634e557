package bezier

import "fmt"

// QuadBez is a quadratic Bézier segment. Its closed-form evaluation is
// cheaper than going through a general [Curve].
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// QuadFromCurve returns the quadratic Bézier with the control points of c,
// which must have exactly three.
func QuadFromCurve(c *Curve[Point]) (QuadBez, error) {
	if c.Len() != 3 {
		return QuadBez{}, fmt.Errorf("quadratic Bézier needs 3 control points, curve has %d", c.Len())
	}
	return QuadBez{c.points[0], c.points[1], c.points[2]}, nil
}

// Curve returns the general curve with q's control points.
func (q QuadBez) Curve() *Curve[Point] {
	return FromPoints(q.P0, q.P1, q.P2)
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}
