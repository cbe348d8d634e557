package bezier

import (
	"fmt"
	"math"
)

// Point3 is a location in three-dimensional space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

var _ Lerper[Point3] = Point3{}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Lerp linearly interpolates between two points, component-wise.
func (pt Point3) Lerp(o Point3, t float64) Point3 {
	return Point3{
		X: pt.X + t*(o.X-pt.X),
		Y: pt.Y + t*(o.Y-pt.Y),
		Z: pt.Z + t*(o.Z-pt.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point3) Distance(o Point3) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	z := pt.Z - o.Z
	return math.Sqrt(x*x + y*y + z*z)
}

// XY drops the z coordinate.
func (pt Point3) XY() Point {
	return Point{X: pt.X, Y: pt.Y}
}
