package bezier

import "testing"

func TestLineEval(t *testing.T) {
	l := Line[Point]{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	diff(t, Pt(0, 0), l.Eval(0))
	diff(t, Pt(0.5, 0.5), l.Eval(0.5))
	diff(t, Pt(1, 1), l.Eval(1))
}

func TestLineGeneric(t *testing.T) {
	l := Line[Scalar]{2, 4}
	if got := l.Eval(0.5); got != 3 {
		t.Errorf("got %v, want 3", got)
	}
}
