// SPDX-License-Identifier: EPL-2.0

package synthgen_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/synthgen"
	"github.com/ik5/synthgen/synth"
	"github.com/ik5/synthgen/wave"
)

// Example_renderTone16 demonstrates the most common use case:
// rendering a single tone as 16-bit PCM.
func Example_renderTone16() {
	// Render one second of concert A at the default 44.1 kHz
	pcm16, err := synthgen.RenderTone16(wave.Sine(440), 1.0, synth.Options{})
	if err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}

	fmt.Printf("Rendered %d samples, first sample %d\n", len(pcm16), pcm16[0])
	// Output: Rendered 44100 samples, first sample 0
}

// Example_renderSong16 shows how to render a Standard MIDI File with a
// custom instrument.
func Example_renderSong16() {
	// A minimal format-0 MIDI file: one half-second A4 note
	song := bytes.NewReader([]byte{
		'M', 'T', 'h', 'd', 0, 0, 0, 6, // header
		0, 0, // format 0
		0, 1, // one track
		0, 96, // 96 ticks per quarter note
		'M', 'T', 'r', 'k', 0, 0, 0, 12, // track
		0x00, 0x90, 0x45, 0x64, // note on, pitch 69, velocity 100
		0x60, 0x80, 0x45, 0x40, // note off after one quarter note
		0x00, 0xff, 0x2f, 0x00, // end of track
	})

	pcm16, err := synthgen.RenderSong16(song, func(frequency float64) wave.Func {
		return wave.Square(frequency)
	}, synth.Options{})
	if err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}

	fmt.Printf("Rendered %d samples\n", len(pcm16))
	// Output: Rendered 22050 samples
}
