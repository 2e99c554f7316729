// SPDX-License-Identifier: EPL-2.0

// Package wave provides waveform generating functions.
//
// A waveform is a Func: given a time t in seconds it returns the amplitude
// of the waveform at that time, nominally in [-1, 1]. Generators are pure
// and hold no mutable state unless noted otherwise, so a Func may be
// evaluated at arbitrary times in any order.
//
// # Basic generators
//
// Fixed-frequency generators are created from a frequency in Hz:
//
//	sine := wave.Sine(440)
//	amplitude := sine(0.25) // amplitude 0.25 seconds in
//
// Available shapes: Sine, Square, Triangle, Sawtooth and Tangent. Tangent is
// unbounded by nature and is clamped to [-1, 1].
//
// # Frequency sweeps
//
// Each shape has a *Func variant that takes the frequency itself as a
// function of time, which allows sweeps and vibrato:
//
//	chirp := wave.SineFunc(func(t float64) float64 { return 220 + 220*t })
//
// # Noise
//
// Noise(seed) produces a reproducible pseudo-random sequence. It is the one
// generator that ignores t: consecutive calls walk the sequence. Two Noise
// generators built from the same seed produce identical output.
//
// # Composite generators
//
// Bell builds a struck-bell tone from a table of decaying harmonics.
// Plucked wraps the Karplus-Strong engine from the filter package into a
// Func usable wherever a plain generator is.
//
// # Sample-based playback
//
// A Table holds decoded mono samples (see the formats subpackages for
// loaders). NewSampler turns a Table into a Func using cubic interpolation,
// with an adjustable playback rate:
//
//	tbl, _ := wav.LoadTable(file)
//	voice := wave.NewSampler(tbl, 1.0) // 1.0 plays at the recorded pitch
package wave
