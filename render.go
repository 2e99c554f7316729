// SPDX-License-Identifier: EPL-2.0

package synthgen

import (
	"fmt"
	"io"

	"github.com/ik5/synthgen/formats/smf"
	"github.com/ik5/synthgen/midi"
	"github.com/ik5/synthgen/synth"
	"github.com/ik5/synthgen/wave"
)

// RenderTone16 is a high-level convenience function that renders a single
// waveform for duration seconds as 16-bit PCM.
//
// Parameters:
//   - fn: The waveform to render (e.g. wave.Sine(440))
//   - duration: Length of the rendered tone in seconds
//   - opts: Rendering options; the zero value renders at 44.1 kHz
//
// Returns the quantized samples at opts.SampleRate. For more control over
// the pipeline, use synth.NewGeneratorSource directly.
func RenderTone16(fn wave.Func, duration float64, opts synth.Options) ([]int16, error) {
	return synth.Render16(fn, duration, opts)
}

// RenderSong16 is a high-level convenience function that decodes a
// Standard MIDI File and renders it with the given instrument as 16-bit
// PCM.
//
// This function creates a processing pipeline:
//  1. Decodes the MIDI file header and track from r
//  2. Converts ticks to seconds using the file's division and tempo map
//  3. Renders each note with the instrument, mixes and peak-normalizes
//  4. Quantizes the mix to 16-bit PCM
//
// The instrument is called once per note with the note's frequency and
// returns the waveform for that note.
//
// Example:
//
//	file, _ := os.Open("song.mid")
//	pcm16, err := synthgen.RenderSong16(file, func(f float64) wave.Func {
//	    return wave.Sine(f)
//	}, synth.Options{})
func RenderSong16(r io.Reader, instrument synth.Instrument, opts synth.Options) ([]int16, error) {
	song, err := smf.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding midi: %w", err)
	}

	timeline, err := midi.Build(song.Events, song.Tempos, song.Division)
	if err != nil {
		return nil, fmt.Errorf("building timeline: %w", err)
	}

	return synth.RenderTimeline16(timeline, instrument, opts)
}
