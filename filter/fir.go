// SPDX-License-Identifier: EPL-2.0

package filter

import "math"

// CutoffRatio converts a cutoff frequency in Hz at a sample rate into the
// fraction-of-sample-rate form the FIR designers take.
func CutoffRatio(frequency float64, sampleRate int) float64 {
	return frequency / float64(sampleRate)
}

// LowPassFIR designs a windowed-sinc low-pass kernel. cutoff is a fraction
// of the sample rate (see CutoffRatio); band is the transition band as a
// fraction of the sample rate and controls how sharp the cutoff is (smaller
// band, longer kernel). Convolving samples with the kernel preserves
// frequencies below the cutoff.
func LowPassFIR(cutoff, band float64) []float64 {
	n := int(math.Ceil(4 / band))
	if n%2 == 1 {
		n++
	}

	sinc := func(x float64) float64 {
		return math.Sin(x*math.Pi) / (x * math.Pi)
	}

	window := BlackmanWindow(n)
	kernel := make([]float64, n)
	var sum float64
	for i := range kernel {
		// n is even, so the argument is never exactly zero.
		kernel[i] = sinc(2*cutoff*(float64(i)-(float64(n)-1)/2)) * window[i]
		sum += kernel[i]
	}

	// Normalize to unity gain at DC.
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

// HighPassFIR designs a windowed-sinc high-pass kernel; frequencies above
// the cutoff are preserved.
func HighPassFIR(cutoff, band float64) []float64 {
	return SpectralInvert(LowPassFIR(cutoff, band))
}

// BandPassFIR designs a kernel preserving frequencies between lowFrequency
// and highFrequency (both as fractions of the sample rate).
func BandPassFIR(lowFrequency, highFrequency, band float64) []float64 {
	lowpass := LowPassFIR(highFrequency, band)
	highpass := HighPassFIR(lowFrequency, band)
	return Convolve(highpass, lowpass)
}

// BandRejectFIR designs a kernel preserving frequencies outside of
// lowFrequency and highFrequency (both as fractions of the sample rate).
func BandRejectFIR(lowFrequency, highFrequency, band float64) []float64 {
	lowpass := LowPassFIR(lowFrequency, band)
	highpass := HighPassFIR(highFrequency, band)
	return Add(highpass, lowpass)
}

// BlackmanWindow returns a Blackman window of the given size.
func BlackmanWindow(size int) []float64 {
	window := make([]float64, size)
	for i := range window {
		x := float64(i) / (float64(size) - 1)
		window[i] = 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	}
	return window
}

// SpectralInvert inverts a kernel's frequency response: a low-pass kernel
// becomes a high-pass one with the same cutoff. The kernel length must be
// even, which every designer in this package produces.
func SpectralInvert(kernel []float64) []float64 {
	inverted := make([]float64, len(kernel))
	for i, el := range kernel {
		inverted[i] = -el
		if i == len(kernel)/2 {
			inverted[i] += 1
		}
	}
	return inverted
}

// Convolve convolves input with a kernel, producing output aligned with the
// input (the kernel is centered).
func Convolve(kernel, input []float64) []float64 {
	half := len(kernel) / 2
	output := make([]float64, 0, len(input)+half-1)

	for i := -half; i < len(input)-1; i++ {
		output = append(output, 0)
		for j := range kernel {
			inputIdx := i + j
			if inputIdx < 0 || inputIdx >= len(input) {
				continue
			}
			output[i+half] += input[inputIdx] * kernel[j]
		}
	}

	return output
}

// Add sums two kernels elementwise, combining their responses. The shorter
// length wins.
func Add(left, right []float64) []float64 {
	n := min(len(left), len(right))
	out := make([]float64, n)
	for i := range out {
		out[i] = left[i] + right[i]
	}
	return out
}
