package bezier

// Lerper describes values that can be linearly interpolated with other values
// of the same type. It is the only capability the curve engine requires of
// its control points, which makes [Curve] agnostic to dimensionality.
type Lerper[P any] interface {
	// Lerp returns the value at parameter t on the line from the receiver to
	// o. t = 0 yields the receiver and t = 1 yields o. Values of t outside of
	// [0, 1] extrapolate along the same line and are not clamped.
	//
	// Implementations must be well-defined for coincident inputs: a.Lerp(a, t)
	// is a for every finite t.
	Lerp(o P, t float64) P
}

// Scalar is a one-dimensional value. A Curve[Scalar] is a Bézier function of
// one variable, which is useful for easing and timing curves.
type Scalar float64

var _ Lerper[Scalar] = Scalar(0)

// Lerp linearly interpolates between two scalars.
func (s Scalar) Lerp(o Scalar, t float64) Scalar {
	return s + Scalar(t)*(o-s)
}
