// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"

	"github.com/ik5/synthgen/midi"
	"github.com/ik5/synthgen/wave"
)

// Render renders a waveform for duration seconds into PCM at
// opts.SampleRate, quantized at opts.BitDepth.
func Render(fn wave.Func, duration float64, opts Options) ([]int32, error) {
	opts = opts.withDefaults()

	samples, err := Collect(NewGeneratorSource(fn, duration, opts.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return QuantizeSamples(samples, opts.BitDepth)
}

// Render16 is Render fixed at 16 bits, the depth most sinks consume.
func Render16(fn wave.Func, duration float64, opts Options) ([]int16, error) {
	opts = opts.withDefaults()
	return Collect16(NewGeneratorSource(fn, duration, opts.SampleRate))
}

// RenderTimeline renders a timeline with the given instrument into PCM
// quantized at opts.BitDepth. The mix is peak-normalized before
// quantization, so the render uses the full integer range; streaming via
// NewTimelineSource skips normalization and applies only the headroom
// division.
func RenderTimeline(tl *midi.Timeline, instrument Instrument, opts Options) ([]int32, error) {
	opts = opts.withDefaults()

	samples, err := Collect(NewTimelineSource(tl, instrument, opts))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return QuantizeSamples(PeakNormalize(samples), opts.BitDepth)
}

// RenderTimeline16 is RenderTimeline fixed at 16 bits.
func RenderTimeline16(tl *midi.Timeline, instrument Instrument, opts Options) ([]int16, error) {
	opts = opts.withDefaults()

	samples, err := Collect(NewTimelineSource(tl, instrument, opts))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples = PeakNormalize(samples)
	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = Quantize16(s)
	}
	return pcm, nil
}
