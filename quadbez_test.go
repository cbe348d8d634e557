package bezier

import "testing"

func TestQuadBezCurve(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	c := q.Curve()
	const epsilon = 1e-12
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, c.MustEval(ts), q.Eval(ts), epsilon)
	}

	back, err := QuadFromCurve(c)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, q, back)
	if _, err := QuadFromCurve(New[Point]()); err == nil {
		t.Error("expected error converting an empty curve to a quadratic")
	}
}

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	c := q.Raise().Curve()
	const epsilon = 1e-12
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, c.MustEval(ts), q.Eval(ts), epsilon)
	}
}

func TestQuadBezSubdivide(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(0.5, 0.5), Pt(1, 0)}
	left, right := q.Subdivide()
	diff(t, Pt(0.5, 0.25), left.End())
	diff(t, Pt(0.5, 0.25), right.Start())
	diff(t, q.Start(), left.Start())
	diff(t, q.End(), right.End())
}
