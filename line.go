package bezier

// Line is a line segment between two values. The curve engine reduces
// control polygons as lists of lines.
type Line[P Lerper[P]] struct {
	P0 P
	P1 P
}

// Eval returns the point at parameter t along the line.
func (l Line[P]) Eval(t float64) P {
	return l.P0.Lerp(l.P1, t)
}
