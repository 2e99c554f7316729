// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"math"
	"math/rand"

	"github.com/ik5/synthgen/envelope"
)

// Func maps a time in seconds to an amplitude, nominally in [-1, 1].
// Additive generators like Bell can exceed the nominal range slightly;
// rendering clamps or normalizes before quantization.
type Func func(t float64) float64

// Sine returns a sine generator at frequency Hz.
func Sine(frequency float64) Func {
	return func(t float64) float64 {
		return math.Sin(t * frequency * 2 * math.Pi)
	}
}

// SineFunc is Sine with a time-varying frequency.
func SineFunc(frequency Func) Func {
	return func(t float64) float64 {
		return math.Sin(t * frequency(t) * 2 * math.Pi)
	}
}

// Square returns a square generator at frequency Hz.
func Square(frequency float64) Func {
	return SquareFunc(constant(frequency))
}

// SquareFunc is Square with a time-varying frequency.
func SquareFunc(frequency Func) Func {
	sine := SineFunc(frequency)
	return func(t float64) float64 {
		if math.Signbit(sine(t)) {
			return -1
		}
		return 1
	}
}

// Sawtooth returns a sawtooth generator at frequency Hz. Its amplitude ramps
// from -0.5 to 0.5 once per period.
func Sawtooth(frequency float64) Func {
	return SawtoothFunc(constant(frequency))
}

// SawtoothFunc is Sawtooth with a time-varying frequency.
func SawtoothFunc(frequency Func) Func {
	return func(t float64) float64 {
		tf := t * frequency(t)
		return tf - math.Floor(tf) - 0.5
	}
}

// Triangle returns a triangle generator at frequency Hz.
func Triangle(frequency float64) Func {
	return TriangleFunc(constant(frequency))
}

// TriangleFunc is Triangle with a time-varying frequency.
func TriangleFunc(frequency Func) Func {
	sawtooth := SawtoothFunc(frequency)
	return func(t float64) float64 {
		return (math.Abs(sawtooth(t)) - 0.25) * 4
	}
}

// Tangent returns a tangent generator at frequency Hz, clamped to [-1, 1].
func Tangent(frequency float64) Func {
	return TangentFunc(constant(frequency))
}

// TangentFunc is Tangent with a time-varying frequency.
func TangentFunc(frequency Func) Func {
	return func(t float64) float64 {
		x := math.Tan(t*frequency(t)*math.Pi-0.5) / 4
		return math.Max(-1, math.Min(1, x))
	}
}

// Noise returns a reproducible pseudo-random generator in [-1, 1). The
// returned Func ignores t and walks the sequence one value per call; two
// generators with the same seed produce the same sequence.
func Noise(seed int64) Func {
	rng := rand.New(rand.NewSource(seed))
	return func(_ float64) float64 {
		return rng.Float64()*2 - 1
	}
}

// bellHarmonic is one partial of a struck bell: a frequency multiple, its
// relative amplitude and its relative decay length.
// http://computermusicresource.com/Simple.bell.tutorial.html
type bellHarmonic struct {
	frequency float64
	amplitude float64
	decay     float64
}

var bellHarmonics = []bellHarmonic{
	{0.56, 1.5, 1.0},
	{0.92, 0.5, 2.0},
	{1.19, 0.25, 4.0},
	{1.71, 0.125, 6.0},
	{2.00, 0.0625, 8.4},
	{2.74, 0.03125, 10.8},
	{3.00, 0.015625, 13.6},
	{3.76, 0.0078125, 16.4},
	{4.07, 0.00390625, 19.6},
}

// Bell returns a struck-bell generator built from nine decaying harmonics.
// attack and decay are in seconds; decay scales each harmonic's decay length.
func Bell(frequency, attack, decay float64) Func {
	return func(t float64) float64 {
		var sum float64
		for _, h := range bellHarmonics {
			partial := Sine(frequency * h.frequency)
			sum += partial(t) * h.amplitude * envelope.AD(t, attack, decay*h.decay)
		}
		return sum / 2
	}
}

func constant(frequency float64) Func {
	return func(_ float64) float64 { return frequency }
}
