// SPDX-License-Identifier: EPL-2.0

package filter

import "math"

// DelayLine delays samples by a fixed time. The buffer length is fixed at
// construction and never resized; a single cursor serves as both read and
// write position, so reading returns the sample written len(buf) steps ago.
type DelayLine struct {
	buf   []float64
	index int
}

// NewDelayLine creates a delay line that delays samples for delayLength
// seconds at sampleRate.
func NewDelayLine(delayLength float64, sampleRate int) (*DelayLine, error) {
	if sampleRate <= 0 {
		return nil, ErrBadSampleRate
	}
	if delayLength <= 0 {
		return nil, ErrBadDelayLength
	}

	delaySamples := int(math.Round(delayLength*float64(sampleRate))) + 1
	return &DelayLine{buf: make([]float64, delaySamples)}, nil
}

// Len returns the delay in samples.
func (d *DelayLine) Len() int { return len(d.buf) }

// Read returns the sample at the current cursor without advancing it.
func (d *DelayLine) Read() float64 {
	return d.buf[d.index]
}

// Write stores value at the current cursor and advances it.
func (d *DelayLine) Write(value float64) {
	d.buf[d.index] = value
	d.index++
	if d.index == len(d.buf) {
		d.index = 0
	}
}

// Step pushes in and returns the delayed sample.
func (d *DelayLine) Step(in float64) float64 {
	out := d.Read()
	d.Write(in)
	return out
}

// Comb is a feedback comb filter: the delayed output is damped by a one-pole
// lowpass and fed back into the delay line. Dampening and feedback of 0.5
// are reasonable defaults.
type Comb struct {
	delay            *DelayLine
	filterState      float64
	dampeningInverse float64
	dampening        float64
	feedback         float64
}

// NewComb creates a comb filter delaying samples for delayLength seconds at
// sampleRate. |feedback| and |dampening| must be below 1 or the feedback
// loop is unconditionally unstable.
func NewComb(delayLength float64, sampleRate int, dampeningInverse, dampening, feedback float64) (*Comb, error) {
	if math.Abs(feedback) >= 1 {
		return nil, ErrUnstableFeedback
	}
	if math.Abs(dampening) >= 1 {
		return nil, ErrUnstableDampening
	}

	delay, err := NewDelayLine(delayLength, sampleRate)
	if err != nil {
		return nil, err
	}

	return &Comb{
		delay:            delay,
		dampeningInverse: dampeningInverse,
		dampening:        dampening,
		feedback:         feedback,
	}, nil
}

// Step consumes one input sample and produces one output sample.
func (c *Comb) Step(in float64) float64 {
	out := c.delay.Read()
	c.filterState = out*c.dampeningInverse + c.filterState*c.dampening
	c.delay.Write(in + c.filterState*c.feedback)
	return out
}

// AllPassDelay is a Schroeder all-pass built on a delay line: flat magnitude
// response, frequency-dependent phase. A feedback of 0.5 works.
type AllPassDelay struct {
	delay    *DelayLine
	feedback float64
}

// NewAllPassDelay creates an all-pass delaying samples for delayLength
// seconds at sampleRate. |feedback| must be below 1.
func NewAllPassDelay(delayLength float64, sampleRate int, feedback float64) (*AllPassDelay, error) {
	if math.Abs(feedback) >= 1 {
		return nil, ErrUnstableFeedback
	}

	delay, err := NewDelayLine(delayLength, sampleRate)
	if err != nil {
		return nil, err
	}

	return &AllPassDelay{delay: delay, feedback: feedback}, nil
}

// Step consumes one input sample and produces one output sample.
func (a *AllPassDelay) Step(in float64) float64 {
	delayed := a.delay.Read()
	a.delay.Write(in + delayed*a.feedback)
	return -in + delayed
}
