// SPDX-License-Identifier: EPL-2.0

// Package pcm holds sample conversion helpers shared by the format loaders.
package pcm

// IntsToMono converts interleaved integer PCM to mono float64 samples in
// [-1, 1], averaging channels and normalizing by the bit depth.
func IntsToMono(data []int, channels, bitDepth int) []float64 {
	if channels < 1 {
		channels = 1
	}

	var scale float64
	switch bitDepth {
	case 8:
		scale = 128
	case 16:
		scale = 32768
	case 24:
		scale = 8388608
	case 32:
		scale = 2147483648
	default:
		scale = 32768
	}

	frames := len(data) / channels
	out := make([]float64, frames)
	for f := range frames {
		var sum float64
		for c := range channels {
			sum += float64(data[f*channels+c])
		}
		out[f] = sum / float64(channels) / scale
	}
	return out
}

// Int16sToMono converts interleaved 16-bit PCM to mono float64 samples.
func Int16sToMono(data []int16, channels int) []float64 {
	if channels < 1 {
		channels = 1
	}

	frames := len(data) / channels
	out := make([]float64, frames)
	for f := range frames {
		var sum float64
		for c := range channels {
			sum += float64(data[f*channels+c])
		}
		out[f] = sum / float64(channels) / 32768
	}
	return out
}

// Float32sToMono converts interleaved float32 samples to mono float64.
func Float32sToMono(data []float32, channels int) []float64 {
	if channels < 1 {
		channels = 1
	}

	frames := len(data) / channels
	out := make([]float64, frames)
	for f := range frames {
		var sum float64
		for c := range channels {
			sum += float64(data[f*channels+c])
		}
		out[f] = sum / float64(channels)
	}
	return out
}
