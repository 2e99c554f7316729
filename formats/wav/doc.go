// SPDX-License-Identifier: EPL-2.0

// Package wav writes rendered PCM as WAV files and loads WAV files into
// sample tables for sample-based playback.
//
// It uses the github.com/go-audio libraries for the container handling.
//
// Writing a render:
//
//	pcm, _ := synth.Render16(wave.Sine(440), 1.0, synth.Options{})
//	f, _ := os.Create("sine.wav")
//	defer f.Close()
//	err := wav.Encode16(f, 44100, pcm)
//
// Loading an instrument table:
//
//	f, _ := os.Open("pluck.wav")
//	tbl, err := wav.LoadTable(f)
//	voice := wave.NewSampler(tbl, 1.0)
package wav
