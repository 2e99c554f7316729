// SPDX-License-Identifier: EPL-2.0

// Package synthgen provides audio synthesis utilities for Go applications.
//
// This package offers convenient functions for rendering tones and MIDI
// songs into 16-bit PCM, built on top of a small set of composable
// subpackages. It's designed to be simple to use while maintaining good
// performance.
//
// # Subpackages
//
//   - wave: waveform generators (sine, square, sawtooth, triangle,
//     tangent, noise, bell, plucked string, sample tables)
//   - envelope: ADSR amplitude envelopes
//   - filter: biquad filters, delay lines, comb and all-pass stages,
//     windowed-sinc FIR design, Karplus-Strong string model
//   - midi: note events, tempo handling and timeline construction
//   - synth: voices, mixing, quantization and the streaming Source
//     pipeline
//   - formats/smf: Standard MIDI File decoding
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: audio file
//     encoding and sample-table loading
//
// # Quick Start
//
// The simplest way to render audio is RenderTone16:
//
//	// Render one second of a 440 Hz sine wave at 44.1 kHz
//	samples, _ := synthgen.RenderTone16(wave.Sine(440), 1.0, synth.Options{})
//
//	// Write it as a WAV file
//	file, _ := os.Create("tone.wav")
//	wav.Encode16(file, 44100, samples)
//
// # Rendering MIDI Files
//
// RenderSong16 decodes a Standard MIDI File and renders it with an
// instrument of your choice:
//
//	file, _ := os.Open("song.mid")
//	samples, _ := synthgen.RenderSong16(file, func(frequency float64) wave.Func {
//	    return wave.Square(frequency)
//	}, synth.Options{})
//
// # Custom Pipelines
//
// For more control, build the pipeline from the synth subpackage
// directly:
//
//	song, _ := smf.Decode(file)
//	timeline, _ := midi.Build(song.Events, song.Tempos, song.Division)
//	src := synth.NewTimelineSource(timeline, instrument, synth.Options{
//	    SampleRate: 48000,
//	    Headroom:   4,
//	    Workers:    runtime.NumCPU(),
//	})
//
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// Sources stream lazily, so a long song can be rendered without holding
// the whole mix in memory.
//
// # Performance
//
// The package is optimized for performance with minimal allocations:
//   - Timeline mixing only evaluates voices that overlap the current block
//   - Voices can be split across worker goroutines with bit-reproducible
//     output for a fixed worker count
//   - Sample-table playback uses cubic interpolation for quality
package synthgen
