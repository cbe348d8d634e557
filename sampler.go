package bezier

import (
	"fmt"
	"iter"
	"math"
)

// endEpsilon is how close to 1 a sample's parameter may get before it is
// treated as the end of the curve. It absorbs rounding in i·step so that the
// final sample isn't preceded by a near-duplicate.
const endEpsilon = 1e-9

// Sampler walks a curve at a fixed parametric step.
//
// The first sample is at t = 0 and the following samples are at t = i·step
// for as long as i·step < 1. The last sample is always at exactly t = 1,
// regardless of whether 1 is a multiple of the step. That makes for
// ⌈1/step⌉ + 1 samples, except for steps with a multiple less than 1e-9
// below 1: that sample is taken as the final one at t = 1, giving one sample
// fewer.
//
// Once the last sample has been produced the sampler is exhausted and stays
// that way until [Sampler.Reset] is called.
//
// A Sampler borrows its curve. Replacing control points while sampling is
// allowed and affects subsequent samples; appending control points is not
// allowed.
type Sampler[P Lerper[P]] struct {
	curve *Curve[P]
	step  float64
	i     int
	done  bool
}

// Sampler returns a sampler that walks c in increments of step.
//
// It returns [ErrInvalidStep] if step isn't a positive, finite number, and
// [ErrUnderspecified] if c has fewer than two control points.
func (c *Curve[P]) Sampler(step float64) (*Sampler[P], error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	if _, ok := c.Order(); !ok {
		return nil, fmt.Errorf("sampling curve: %w", ErrUnderspecified)
	}
	return &Sampler[P]{curve: c, step: step}, nil
}

func checkStep(step float64) error {
	if !(step > 0) || math.IsInf(step, 0) {
		return fmt.Errorf("step %g: %w", step, ErrInvalidStep)
	}
	return nil
}

// Next returns the next sample. ok is false if the sampler is exhausted.
func (s *Sampler[P]) Next() (pt P, ok bool) {
	_, pt, ok = s.NextT()
	return pt, ok
}

// NextT is like [Sampler.Next] but also returns the parameter the curve was
// evaluated at.
func (s *Sampler[P]) NextT() (t float64, pt P, ok bool) {
	if s.done {
		return 0, *new(P), false
	}
	t = float64(s.i) * s.step
	if t >= 1-endEpsilon {
		t = 1
		s.done = true
	}
	s.i++
	return t, s.curve.eval(t), true
}

// Done reports whether the sampler is exhausted.
func (s *Sampler[P]) Done() bool {
	return s.done
}

// Reset rewinds the sampler to t = 0.
func (s *Sampler[P]) Reset() {
	s.i = 0
	s.done = false
}

// All returns an iterator over the remaining samples and their parameters.
// Samples consumed by the iterator are consumed from s.
func (s *Sampler[P]) All() iter.Seq2[float64, P] {
	return func(yield func(float64, P) bool) {
		for {
			t, pt, ok := s.NextT()
			if !ok || !yield(t, pt) {
				return
			}
		}
	}
}

// Samples returns an iterator over the points of c at a fixed parametric
// step, as produced by [Sampler]. Unlike a Sampler, the iterator can be used
// more than once; each use starts at t = 0.
func (c *Curve[P]) Samples(step float64) (iter.Seq[P], error) {
	if _, err := c.Sampler(step); err != nil {
		return nil, err
	}
	return func(yield func(P) bool) {
		s := &Sampler[P]{curve: c, step: step}
		for _, pt := range s.All() {
			if !yield(pt) {
				return
			}
		}
	}, nil
}

// Sample returns the points of c at a fixed parametric step, as produced by
// [Sampler].
func (c *Curve[P]) Sample(step float64) ([]P, error) {
	s, err := c.Sampler(step)
	if err != nil {
		return nil, err
	}
	out := make([]P, 0, sampleCount(step))
	for _, pt := range s.All() {
		out = append(out, pt)
	}
	return out, nil
}

// sampleCount estimates the number of samples for a step. It is only used as
// a capacity hint.
func sampleCount(step float64) int {
	n := math.Ceil(1/step) + 1
	if n > 1<<16 {
		return 1 << 16
	}
	return int(n)
}
