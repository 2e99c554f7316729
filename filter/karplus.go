// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"
	"math/rand"
)

// KarplusStrong is a plucked-string synthesis engine. A ring buffer one
// period long is seeded with noise; every tick emits the oldest sample and
// writes back the damped average of the two oldest, which both feeds the
// string and low-passes it. Generation and filtering live in one stateful
// unit rather than a pure generator.
type KarplusStrong struct {
	buf   []float64
	pos   int
	decay float64
}

// NewKarplusStrong creates a plucked string at frequency Hz. The ring buffer
// length is round(sampleRate/frequency), so frequency must lie in
// (0, sampleRate/2]. decay in (0, 1) controls damping: values near 1 ring
// longer. seed makes the initial noise burst reproducible.
func NewKarplusStrong(frequency, decay float64, sampleRate int, seed int64) (*KarplusStrong, error) {
	if sampleRate <= 0 {
		return nil, ErrBadSampleRate
	}
	if frequency <= 0 || frequency > float64(sampleRate)/2 {
		return nil, ErrBadFrequency
	}
	if decay <= 0 || decay >= 1 {
		return nil, ErrBadDecay
	}

	length := int(math.Round(float64(sampleRate) / frequency))
	buf := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range buf {
		buf[i] = rng.Float64()*2 - 1
	}

	return &KarplusStrong{buf: buf, decay: decay}, nil
}

// Len returns the ring buffer length in samples.
func (k *KarplusStrong) Len() int { return len(k.buf) }

// Tick emits the next string sample and advances the simulation. Calls must
// be made in strict time order.
func (k *KarplusStrong) Tick() float64 {
	out := k.buf[k.pos]
	next := k.buf[(k.pos+1)%len(k.buf)]
	k.buf[k.pos] = k.decay * (out + next) / 2
	k.pos = (k.pos + 1) % len(k.buf)
	return out
}
