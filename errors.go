package bezier

import (
	"errors"
	"fmt"
)

var (
	// ErrUnderspecified is returned when an operation needs a curve of
	// defined order, that is, one with at least two control points.
	ErrUnderspecified = errors.New("curve needs at least two control points")

	// ErrInvalidStep is returned when sampling with a step that isn't a
	// positive, finite number.
	ErrInvalidStep = errors.New("sampling step must be positive and finite")

	// ErrIndexOutOfRange is wrapped by [IndexError].
	ErrIndexOutOfRange = errors.New("control point index out of range")
)

// IndexError describes an access to a control point that doesn't exist.
type IndexError struct {
	Index int
	// Len is the number of control points at the time of the access.
	Len int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("control point index %d out of range [0, %d)", err.Index, err.Len)
}

func (err *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
