// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Quantize maps an amplitude in [-1, 1] to a signed integer of the given
// bit depth, rounding to nearest. The scale is symmetric, 2^(bits-1)-1, so
// +1.0 and -1.0 map to extremes of equal magnitude. Out-of-range inputs
// clamp to the extremes; they never wrap.
func Quantize(x float64, bits int) (int32, error) {
	if bits < 2 || bits > 32 {
		return 0, ErrBadBitDepth
	}

	scale := float64(int64(1)<<(bits-1) - 1)
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int32(math.Round(x * scale)), nil
}

// Quantize16 maps an amplitude in [-1, 1] to 16-bit PCM. Same contract as
// Quantize with bits=16, without the depth check.
func Quantize16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int16(math.Round(x * 32767))
}

// QuantizeSamples quantizes a whole slice at the given bit depth.
func QuantizeSamples(samples []float64, bits int) ([]int32, error) {
	out := make([]int32, len(samples))
	for i, s := range samples {
		q, err := Quantize(s, bits)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}

// PeakNormalize scales samples so the largest magnitude touches 1. Silence
// comes back unchanged.
func PeakNormalize(samples []float64) []float64 {
	var peak float64
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s))
	}

	out := make([]float64, len(samples))
	if peak == 0 {
		copy(out, samples)
		return out
	}
	for i, s := range samples {
		out[i] = s / peak
	}
	return out
}
