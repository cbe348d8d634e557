package bezier

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Point32 is a two-dimensional point with single precision coordinates, for
// use with graphics APIs that work in float32.
type Point32 struct {
	X float32
	Y float32
}

var _ Lerper[Point32] = Point32{}

// Pt32 returns the point (x, y).
func Pt32(x, y float32) Point32 {
	return Point32{X: x, Y: y}
}

func (pt Point32) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Lerp linearly interpolates between two points, component-wise. The
// parameter is narrowed to float32 before interpolating.
func (pt Point32) Lerp(o Point32, t float64) Point32 {
	t32 := float32(t)
	return Point32{
		X: pt.X + t32*(o.X-pt.X),
		Y: pt.Y + t32*(o.Y-pt.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point32) Distance(o Point32) float32 {
	return math32.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// Round returns a new point with x and y rounded to the nearest integers.
func (pt Point32) Round() Point32 {
	return Point32{
		X: math32.Round(pt.X),
		Y: math32.Round(pt.Y),
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point32) IsInf() bool {
	return math32.IsInf(pt.X, 0) || math32.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point32) IsNaN() bool {
	return math32.IsNaN(pt.X) || math32.IsNaN(pt.Y)
}

// Point64 widens pt to double precision.
func (pt Point32) Point64() Point {
	return Point{X: float64(pt.X), Y: float64(pt.Y)}
}
