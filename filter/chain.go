// SPDX-License-Identifier: EPL-2.0

package filter

// Stepper is the single-sample-step contract shared by all stateful filters:
// one input sample in, one output sample out, strict time order.
type Stepper interface {
	Step(in float64) float64
}

var (
	_ Stepper = (*Biquad)(nil)
	_ Stepper = (*DelayLine)(nil)
	_ Stepper = (*Comb)(nil)
	_ Stepper = (*AllPassDelay)(nil)
)

// Chain applies filters in order, feeding each filter's output into the
// next. An empty chain passes samples through unchanged.
type Chain []Stepper

func (c Chain) Step(in float64) float64 {
	for _, f := range c {
		in = f.Step(in)
	}
	return in
}
