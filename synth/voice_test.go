// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"

	"github.com/ik5/synthgen/envelope"
	"github.com/ik5/synthgen/filter"
	"github.com/ik5/synthgen/wave"
)

func TestVoice_SilentBeforeOnset(t *testing.T) {
	t.Parallel()

	v := Voice{
		Gen:    wave.Sine(440),
		Onset:  1.0,
		Offset: 2.0,
		Gain:   1.0,
	}

	for _, tm := range []float64{0, 0.5, 0.999} {
		if got := v.sample(tm); got != 0 {
			t.Errorf("sample(%v) = %v, want 0 before onset", tm, got)
		}
	}
}

func TestVoice_GeneratorSeesOnsetRelativeTime(t *testing.T) {
	t.Parallel()

	// A voice starting at t=1 must produce the same waveform shape as one
	// starting at t=0; generators get time since onset, not absolute time.
	early := Voice{Gen: wave.Sawtooth(440), Onset: 0, Offset: 1, Gain: 1}
	late := Voice{Gen: wave.Sawtooth(440), Onset: 1, Offset: 2, Gain: 1}

	for i := range 1000 {
		tm := float64(i) / 44100
		if got, want := late.sample(1+tm), early.sample(tm); got != want {
			t.Fatalf("offset %v: late voice %v, early voice %v", tm, got, want)
		}
	}
}

func TestVoice_SilentAfterOffsetWithoutEnvelope(t *testing.T) {
	t.Parallel()

	v := Voice{Gen: wave.Sine(440), Onset: 0, Offset: 0.5, Gain: 1}

	if got := v.sample(0.6); got != 0 {
		t.Errorf("sample past offset = %v, want 0", got)
	}
	if got := v.end(); got != 0.5 {
		t.Errorf("end() = %v, want 0.5", got)
	}
}

func TestVoice_EnvelopeReleaseTail(t *testing.T) {
	t.Parallel()

	env := &envelope.ADSR{Attack: 0.01, Decay: 0.01, Sustain: 0.8, Release: 0.2}
	v := Voice{
		Gen:    wave.Sine(440),
		Env:    env,
		Onset:  0,
		Offset: 0.5,
		Gain:   1,
	}

	if got := v.end(); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("end() = %v, want offset plus release tail 0.7", got)
	}

	// During the release the voice still sounds.
	var sounded bool
	for i := range 100 {
		if v.sample(0.5+float64(i)/1000) != 0 {
			sounded = true
			break
		}
	}
	if !sounded {
		t.Error("voice silent through its entire release tail")
	}

	// Past the tail it is silent.
	if got := v.sample(0.75); got != 0 {
		t.Errorf("sample past release = %v, want 0", got)
	}
}

func TestVoice_GainScales(t *testing.T) {
	t.Parallel()

	loud := Voice{Gen: wave.Sine(440), Onset: 0, Offset: 1, Gain: 1}
	quiet := Voice{Gen: wave.Sine(440), Onset: 0, Offset: 1, Gain: 0.25}

	tm := 0.1234
	if got, want := quiet.sample(tm), loud.sample(tm)*0.25; math.Abs(got-want) > 1e-12 {
		t.Errorf("quiet sample = %v, want %v", got, want)
	}
}

func TestVoice_ChainFiltersOutput(t *testing.T) {
	t.Parallel()

	lp, err := filter.NewBiquad(filter.LowPass, 200, math.Sqrt2/2, 44100)
	if err != nil {
		t.Fatalf("NewBiquad() error = %v", err)
	}

	// A 5 kHz tone through a 200 Hz lowpass fades to nearly nothing.
	v := Voice{
		Gen:    wave.Sine(5000),
		Chain:  filter.Chain{lp},
		Onset:  0,
		Offset: 1,
		Gain:   1,
	}

	var peak float64
	for i := range 44100 {
		out := v.sample(float64(i) / 44100)
		if i > 22050 {
			peak = math.Max(peak, math.Abs(out))
		}
	}
	if peak > 0.01 {
		t.Errorf("filtered peak = %v, want < 0.01", peak)
	}
}

func TestNewVoiceSource_DurationDefaultsToVoiceEnd(t *testing.T) {
	t.Parallel()

	v := Voice{Gen: wave.Sine(440), Onset: 0, Offset: 0.5, Gain: 1}
	src := NewVoiceSource(v, 0, 44100)

	samples, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 22050 {
		t.Errorf("got %d samples, want 22050", len(samples))
	}
}

func TestNewVoiceSource_ExplicitDuration(t *testing.T) {
	t.Parallel()

	v := Voice{Gen: wave.Sine(440), Onset: 0, Offset: 10, Gain: 1}
	src := NewVoiceSource(v, 0.25, 44100)

	samples, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 11025 {
		t.Errorf("got %d samples, want 11025", len(samples))
	}
}
