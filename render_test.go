// SPDX-License-Identifier: EPL-2.0

package synthgen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/synthgen/envelope"
	"github.com/ik5/synthgen/formats/smf"
	"github.com/ik5/synthgen/synth"
	"github.com/ik5/synthgen/wave"
)

// testSong is a minimal format-0 MIDI file at division 96: A4 for one
// quarter note, then E5 for one quarter note.
var testSong = []byte{
	'M', 'T', 'h', 'd', 0, 0, 0, 6,
	0, 0,
	0, 1,
	0, 96,
	'M', 'T', 'r', 'k', 0, 0, 0, 20,
	0x00, 0x90, 0x45, 0x64,
	0x60, 0x80, 0x45, 0x40,
	0x00, 0x90, 0x4c, 0x64,
	0x60, 0x80, 0x4c, 0x40,
	0x00, 0xff, 0x2f, 0x00,
}

func TestRenderTone16(t *testing.T) {
	t.Parallel()

	pcm16, err := RenderTone16(wave.Sine(440), 0.5, synth.Options{SampleRate: 8000})
	if err != nil {
		t.Fatalf("RenderTone16() error = %v", err)
	}

	if len(pcm16) != 4000 {
		t.Errorf("got %d samples, want 4000", len(pcm16))
	}

	// Verify samples are in valid range and actually sound.
	var peak int16
	for _, s := range pcm16 {
		if s > peak {
			peak = s
		}
	}
	if peak < 32000 {
		t.Errorf("peak = %d, want near full scale", peak)
	}
}

func TestRenderSong16(t *testing.T) {
	t.Parallel()

	pcm16, err := RenderSong16(bytes.NewReader(testSong), func(frequency float64) wave.Func {
		return wave.Sine(frequency)
	}, synth.Options{SampleRate: 8000})
	if err != nil {
		t.Fatalf("RenderSong16() error = %v", err)
	}

	// Two quarter notes at the default 120 BPM is one second.
	if len(pcm16) != 8000 {
		t.Errorf("got %d samples, want 8000", len(pcm16))
	}

	// The mix is peak-normalized, so the loudest sample hits full scale.
	var peak int16
	for _, s := range pcm16 {
		if s > peak {
			peak = s
		}
		if -s > peak {
			peak = -s
		}
	}
	if peak != 32767 {
		t.Errorf("peak = %d, want 32767", peak)
	}
}

func TestRenderSong16_WithEnvelope(t *testing.T) {
	t.Parallel()

	pcm16, err := RenderSong16(bytes.NewReader(testSong), func(frequency float64) wave.Func {
		return wave.Square(frequency)
	}, synth.Options{
		SampleRate: 8000,
		Envelope:   &envelope.ADSR{Attack: 0.01, Decay: 0.05, Sustain: 0.8, Release: 0.125},
	})
	if err != nil {
		t.Fatalf("RenderSong16() error = %v", err)
	}

	// The release tail extends the render past the last note-off.
	if len(pcm16) != 9000 {
		t.Errorf("got %d samples, want 9000", len(pcm16))
	}
}

func TestRenderSong16_InvalidFile(t *testing.T) {
	t.Parallel()

	_, err := RenderSong16(bytes.NewReader([]byte("not a midi file, sorry")), func(frequency float64) wave.Func {
		return wave.Sine(frequency)
	}, synth.Options{})

	if !errors.Is(err, smf.ErrNotMidiFile) {
		t.Errorf("RenderSong16() error = %v, want ErrNotMidiFile", err)
	}
}

func BenchmarkRenderSong16(b *testing.B) {
	for b.Loop() {
		_, err := RenderSong16(bytes.NewReader(testSong), func(frequency float64) wave.Func {
			return wave.Sine(frequency)
		}, synth.Options{SampleRate: 8000})
		if err != nil {
			b.Fatal(err)
		}
	}
}
