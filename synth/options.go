// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"github.com/ik5/synthgen/envelope"
	"github.com/ik5/synthgen/filter"
)

// Options configures rendering. The zero value gets sensible defaults:
// 44100 Hz, 16-bit, unity headroom, one worker, duration until the last
// voice falls silent.
type Options struct {
	// SampleRate of the produced stream in Hz.
	SampleRate int

	// BitDepth of quantized PCM output, used by Render and RenderTimeline.
	// The *16 variants are fixed at 16 bits and ignore it.
	BitDepth int

	// Headroom divides the mixed signal before clamping and quantization.
	// 1 means clamp-only. The division is applied sample by sample, so the
	// stream stays deterministic regardless of later polyphony.
	Headroom float64

	// Workers evaluates voices on this many goroutines. Each voice is owned
	// by exactly one worker; outputs join deterministically before mixing.
	// Output is bit-reproducible for a fixed worker count.
	Workers int

	// Duration in seconds. Zero means render until the last voice's
	// envelope release has finished.
	Duration float64

	// Envelope shapes every voice, when set.
	Envelope *envelope.ADSR

	// NewChain builds a fresh filter chain per voice, when set. Chains hold
	// recursion state and are never shared between voices.
	NewChain func() filter.Chain
}

func (o Options) withDefaults() Options {
	if o.SampleRate <= 0 {
		o.SampleRate = 44100
	}
	if o.BitDepth <= 0 {
		o.BitDepth = 16
	}
	if o.Headroom <= 0 {
		o.Headroom = 1
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	return o
}
