// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"io"

	"github.com/ik5/synthgen/wave"
)

type generatorSource struct {
	fn        wave.Func
	rate      int
	total     int
	generated int
}

// NewGeneratorSource streams a waveform for duration seconds at sampleRate.
// Sample i is the waveform evaluated at t = i/sampleRate; duration maps to
// int(duration * sampleRate) samples, fractions truncated.
func NewGeneratorSource(fn wave.Func, duration float64, sampleRate int) Source {
	total := int(float64(sampleRate) * duration)
	if total < 0 {
		total = 0
	}
	return &generatorSource{fn: fn, rate: sampleRate, total: total}
}

func (g *generatorSource) SampleRate() int { return g.rate }

func (g *generatorSource) ReadSamples(dst []float64) (int, error) {
	if g.generated >= g.total {
		return 0, io.EOF
	}

	n := min(len(dst), g.total-g.generated)
	for i := range n {
		t := float64(g.generated+i) / float64(g.rate)
		dst[i] = g.fn(t)
	}
	g.generated += n

	if g.generated >= g.total {
		return n, io.EOF
	}
	return n, nil
}
