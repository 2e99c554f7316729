// SPDX-License-Identifier: EPL-2.0

package filter

import "math"

// Kind selects the response of a Biquad.
type Kind int

const (
	LowPass Kind = iota
	HighPass
	BandPass
	BandReject
	AllPass
)

func (k Kind) String() string {
	switch k {
	case LowPass:
		return "lowpass"
	case HighPass:
		return "highpass"
	case BandPass:
		return "bandpass"
	case BandReject:
		return "bandreject"
	case AllPass:
		return "allpass"
	default:
		return "unknown"
	}
}

// Biquad is a second-order recursive filter. Coefficients come from the
// RBJ audio-EQ cookbook (https://www.w3.org/2011/audio/audio-eq-cookbook.html);
// the recursion runs in transposed direct form II, so state is exactly two
// values regardless of kind.
type Biquad struct {
	b0, b1, b2 float64
	a1, a2     float64

	// recursion state
	z1, z2 float64
}

// NewBiquad derives a biquad of the given kind for a cutoff (or center)
// frequency in Hz, quality factor q, and sample rate in Hz. The cutoff must
// lie strictly below the Nyquist frequency and q must be positive; the
// sample rate used here must match the rate the filter is stepped at, or
// the response lands at the wrong frequency.
func NewBiquad(kind Kind, cutoff, q float64, sampleRate int) (*Biquad, error) {
	if sampleRate <= 0 {
		return nil, ErrBadSampleRate
	}
	if cutoff <= 0 || cutoff >= float64(sampleRate)/2 {
		return nil, ErrCutoffOutOfRange
	}
	if q <= 0 {
		return nil, ErrNonPositiveQ
	}

	omega := 2 * math.Pi * cutoff / float64(sampleRate)
	sin := math.Sin(omega)
	cos := math.Cos(omega)
	alpha := sin / (2 * q)

	var b0, b1, b2, a0, a1, a2 float64
	switch kind {
	case LowPass:
		b0 = (1 - cos) / 2
		b1 = 1 - cos
		b2 = b0
	case HighPass:
		b0 = (1 + cos) / 2
		b1 = -(1 + cos)
		b2 = b0
	case BandPass:
		b0 = alpha
		b1 = 0
		b2 = -alpha
	case BandReject:
		b0 = 1
		b1 = -2 * cos
		b2 = 1
	case AllPass:
		b0 = 1 - alpha
		b1 = -2 * cos
		b2 = 1 + alpha
	default:
		return nil, ErrInvalidParameter
	}
	a0 = 1 + alpha
	a1 = -2 * cos
	a2 = 1 - alpha

	return &Biquad{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}, nil
}

// Step consumes one input sample and produces one output sample. Calls must
// be made in strict time order.
func (f *Biquad) Step(in float64) float64 {
	out := f.b0*in + f.z1
	f.z1 = f.b1*in - f.a1*out + f.z2
	f.z2 = f.b2*in - f.a2*out
	return out
}

// Reset clears the recursion state without touching the coefficients.
func (f *Biquad) Reset() {
	f.z1 = 0
	f.z2 = 0
}
