package bezier

import "fmt"

// CubicBez is a cubic Bézier segment, the curve with exactly four control
// points. Its closed-form evaluation is cheaper than going through a general
// [Curve].
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// CubicFromCurve returns the cubic Bézier with the control points of c,
// which must have exactly four.
func CubicFromCurve(c *Curve[Point]) (CubicBez, error) {
	if c.Len() != 4 {
		return CubicBez{}, fmt.Errorf("cubic Bézier needs 4 control points, curve has %d", c.Len())
	}
	return CubicBez{c.points[0], c.points[1], c.points[2], c.points[3]}, nil
}

// Curve returns the general curve with c's control points.
func (c CubicBez) Curve() *Curve[Point] {
	return FromPoints(c.P0, c.P1, c.P2, c.P3)
}

// Point returns the i'th control point.
func (c CubicBez) Point(i int) (Point, error) {
	switch i {
	case 0:
		return c.P0, nil
	case 1:
		return c.P1, nil
	case 2:
		return c.P2, nil
	case 3:
		return c.P3, nil
	default:
		return Point{}, &IndexError{Index: i, Len: 4}
	}
}

// WithPoint returns a copy of c with the i'th control point replaced.
func (c CubicBez) WithPoint(i int, pt Point) (CubicBez, error) {
	switch i {
	case 0:
		c.P0 = pt
	case 1:
		c.P1 = pt
	case 2:
		c.P2 = pt
	case 3:
		c.P3 = pt
	default:
		return c, &IndexError{Index: i, Len: 4}
	}
	return c, nil
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}
