package bezier

// Affine is a 2D affine transform. The coefficients (a, b, c, d, e, f) map a
// point (x, y) to (a·x + c·y + e, b·x + d·y + f), the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Transforming the control points of a Bézier curve transforms every point on
// the curve the same way, see [TransformCurve].
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity leaves points unchanged.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY negates y. SVG and most raster formats are y-down, so curves
// designed y-up are flipped before being written out.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// MapUnitSquare maps (0, 0) to (r.X0, r.Y0) and (1, 1) to (r.X1, r.Y1).
// Curves designed in the unit square, such as timing functions, can be
// placed anywhere with it. r may have negative width or height.
func MapUnitSquare(r Rect) Affine {
	return Affine{r.Width(), 0, 0, r.Height(), r.X0, r.Y0}
}

// Mul composes two transforms. Applying aff.Mul(o) to a point applies o
// first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// TransformCurve returns a new curve whose control points are those of c,
// transformed by aff.
func TransformCurve(c *Curve[Point], aff Affine) *Curve[Point] {
	return Map(c, func(pt Point) Point { return pt.Transform(aff) })
}
