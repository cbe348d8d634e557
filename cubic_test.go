package bezier

import (
	"errors"
	"testing"
)

func TestCubicBezCurve(t *testing.T) {
	c := CubicBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
		Pt(4.2, 1.1),
	}
	cc := c.Curve()
	if n, _ := cc.Order(); n != 3 {
		t.Fatalf("got order %d, want 3", n)
	}
	const epsilon = 1e-12
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, cc.MustEval(ts), c.Eval(ts), epsilon)
	}

	back, err := CubicFromCurve(cc)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, c, back)

	if _, err := CubicFromCurve(FromPoints(Pt(0, 0), Pt(1, 1))); err == nil {
		t.Error("expected error converting a line to a cubic")
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	left, right := c.Subdivide()
	l, r, err := c.Curve().Split(0.5)
	if err != nil {
		t.Fatal(err)
	}
	const epsilon = 1e-12
	for i, pt := range l.Points() {
		want, _ := left.Point(i)
		assertNear(t, pt, want, epsilon)
	}
	for i, pt := range r.Points() {
		want, _ := right.Point(i)
		assertNear(t, pt, want, epsilon)
	}
}

func TestCubicBezPoint(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	for i := range 4 {
		pt, err := c.Point(i)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, Pt(float64(i), float64(i)), pt)
	}
	if _, err := c.Point(4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got error %v, want %v", err, ErrIndexOutOfRange)
	}

	c2, err := c.WithPoint(2, Pt(9, 9))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(9, 9), c2.P2)
	diff(t, Pt(2, 2), c.P2)
	if _, err := c.WithPoint(-1, Pt(9, 9)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got error %v, want %v", err, ErrIndexOutOfRange)
	}
}

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}
