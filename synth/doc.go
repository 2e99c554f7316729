// SPDX-License-Identifier: EPL-2.0

// Package synth drives generators, envelopes and filters across a discrete
// time grid and quantizes the result to integer PCM.
//
// # Sources
//
// The Source interface is the pipeline contract: a lazy, finite, single-pass
// stream of float64 samples in [-1, 1]. ReadSamples returns io.EOF when the
// stream is finished; a Source is not restartable — reproducing its output
// means rebuilding it and pulling again from the start.
//
//	src := synth.NewGeneratorSource(wave.Sine(440), 1.0, 44100)
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// NewVoiceSource runs a single generator+envelope+filter-chain voice;
// NewTimelineSource renders a midi.Timeline with additive multi-voice
// mixing.
//
// # Determinism
//
// Mixing sums voices in timeline insertion order. Because floating-point
// addition is not associative, the summation grouping is part of the
// output: rendering the same timeline with the same Options (including
// Workers) is bit-reproducible. The mix is divided by Options.Headroom;
// a NaN or Inf appearing in the mix aborts the stream with
// ErrNumericOverflow instead of emitting corrupted audio.
//
// # Quantization
//
// Quantize maps [-1, 1] to signed integers by rounding to nearest with a
// symmetric scale of 2^(bits-1)-1, so +1.0 and -1.0 map to equal-magnitude
// extremes. Inputs outside [-1, 1] clamp, never wrap. The Render and
// RenderTimeline helpers quantize at Options.BitDepth; the *16 variants are
// fixed at 16 bits.
//
//	pcm, err := synth.Collect16(src)
package synth
