// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"io"

	"github.com/ik5/synthgen/envelope"
	"github.com/ik5/synthgen/filter"
	"github.com/ik5/synthgen/wave"
)

// Voice is one sounding note: a generator plus optional envelope and filter
// chain, bound to the interval [Onset, Offset). The chain's recursion state
// belongs to this voice alone and is stepped exactly once per sample in
// time order.
type Voice struct {
	Gen     wave.Func
	Env     *envelope.ADSR
	Chain   filter.Chain
	Channel uint8

	Onset  float64
	Offset float64
	Gain   float64
}

// sample evaluates the voice at absolute time t. The generator and envelope
// see time relative to the voice's onset. It must be called in strict time
// order when the voice carries a filter chain.
func (v *Voice) sample(t float64) float64 {
	var amp float64
	elapsed := t - v.Onset
	switch {
	case elapsed < 0:
		// Not sounding yet; still step the chain so its state stays causal.
	case v.Env != nil:
		amp = v.Gen(elapsed) * v.Gain * v.Env.Gain(elapsed, v.Offset-v.Onset)
	case t < v.Offset:
		amp = v.Gen(elapsed) * v.Gain
	}
	if v.Chain != nil {
		amp = v.Chain.Step(amp)
	}
	return amp
}

// end returns the time the voice falls silent: its offset plus whatever
// release tail the envelope adds.
func (v *Voice) end() float64 {
	if v.Env != nil {
		return v.Offset + v.Env.Tail()
	}
	return v.Offset
}

type voiceSource struct {
	voice *Voice
	rate  int
	total int
	i     int
}

// NewVoiceSource streams a single voice for duration seconds at sampleRate.
// A duration of zero means until the voice falls silent. Duration maps to
// int(duration * sampleRate) samples, fractions truncated.
func NewVoiceSource(v Voice, duration float64, sampleRate int) Source {
	if duration <= 0 {
		duration = v.end()
	}
	total := int(duration * float64(sampleRate))
	if total < 0 {
		total = 0
	}
	return &voiceSource{voice: &v, rate: sampleRate, total: total}
}

func (s *voiceSource) SampleRate() int { return s.rate }

func (s *voiceSource) ReadSamples(dst []float64) (int, error) {
	if s.i >= s.total {
		return 0, io.EOF
	}

	n := min(len(dst), s.total-s.i)
	for j := range n {
		t := float64(s.i+j) / float64(s.rate)
		dst[j] = s.voice.sample(t)
	}
	s.i += n

	if s.i >= s.total {
		return n, io.EOF
	}
	return n, nil
}
