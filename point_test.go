package bezier

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(1, 1)
	diff(t, a.Lerp(b, 0), a)
	diff(t, a.Lerp(b, 1), b)
	diff(t, a.Lerp(b, 0.5), Pt(0.5, 0.5))
	// Not clamped.
	diff(t, a.Lerp(b, 2), Pt(2, 2))
	diff(t, a.Lerp(b, -1), Pt(-1, -1))
}

func TestPointLerpVertical(t *testing.T) {
	// Identical x coordinates must not need special treatment.
	a := Pt(2, 0)
	b := Pt(2, 4)
	diff(t, a.Lerp(b, 0.25), Pt(2, 1))
	diff(t, b.Lerp(a, 0.25), Pt(2, 3))
}

func TestPointLerpCoincident(t *testing.T) {
	p := Pt(2.5, -3)
	for _, ts := range []float64{-1, 0, 0.3, 1, 2.7} {
		if got := p.Lerp(p, ts); got != p {
			t.Errorf("t=%g: got %s, want %s", ts, got, p)
		}
	}
}

func TestPointIsInfNaN(t *testing.T) {
	if Pt(0, 0).IsInf() || Pt(0, 0).IsNaN() {
		t.Error("finite point reported as infinite or NaN")
	}
	if !Pt(math.Inf(1), 0).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
	if !Pt(0, math.NaN()).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
}

func TestPoint3Lerp(t *testing.T) {
	a := Pt3(0, 0, 0)
	b := Pt3(1, 2, 4)
	diff(t, a.Lerp(b, 0.5), Pt3(0.5, 1, 2))
	diff(t, a.Lerp(b, 0.5).XY(), Pt(0.5, 1))
	if d := a.Distance(Pt3(2, 3, 6)); d != 7 {
		t.Errorf("got distance %v, want 7", d)
	}
}

func TestPoint32Lerp(t *testing.T) {
	a := Pt32(0, 0)
	b := Pt32(1, 1)
	diff(t, a.Lerp(b, 0.5), Pt32(0.5, 0.5))
	diff(t, a.Lerp(b, 0.5).Point64(), Pt(0.5, 0.5))
	diff(t, Pt32(1.4, -2.6).Round(), Pt32(1, -3))
	if d := Pt32(0, 0).Distance(Pt32(3, 4)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if !Pt32(float32(math.Inf(-1)), 0).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
}

func TestScalarLerp(t *testing.T) {
	if got := Scalar(2).Lerp(4, 0.25); got != 2.5 {
		t.Errorf("got %v, want 2.5", got)
	}
}
