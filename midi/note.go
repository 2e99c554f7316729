// SPDX-License-Identifier: EPL-2.0

package midi

import "math"

// Frequency returns the equal-tempered frequency in Hz of a MIDI pitch
// (A4 = pitch 69 = 440 Hz).
func Frequency(pitch uint8) float64 {
	return 440 * math.Pow(2, (float64(pitch)-69)/12)
}

// Note returns the equal-tempered frequency of a semitone (0=C ... 11=B) in
// an octave, tuned against the given A4 frequency.
func Note(a4 float64, semitone, octave int) float64 {
	semitonesFromA4 := octave*12 + semitone - 9 - 48
	return a4 * math.Exp(float64(semitonesFromA4)*math.Ln2/12)
}

// Gain maps a note velocity to a linear gain using an exponential loudness
// curve.
func Gain(velocity uint8) float64 {
	return math.Exp(6.908*float64(velocity)/255) / 1000
}
