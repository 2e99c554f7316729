// SPDX-License-Identifier: EPL-2.0

package envelope

// ADSR is an attack/decay/sustain/release envelope. Attack, Decay and
// Release are durations in seconds; Sustain is a level in [0, 1].
// A zero-length stage is an instantaneous jump.
type ADSR struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// Gain returns the envelope multiplier in [0, 1] at elapsed seconds after
// note-on, for a note held for held seconds. While elapsed < held the note
// is sounding: gain ramps 0 to 1 over Attack, 1 down to Sustain over Decay,
// then holds at Sustain. From held onward it ramps to 0 over Release,
// starting from whatever level the envelope had when the note was released.
func (e ADSR) Gain(elapsed, held float64) float64 {
	if elapsed < 0 {
		return 0
	}
	if held < 0 {
		held = 0
	}

	if elapsed < held {
		return e.level(elapsed)
	}

	if e.Release <= 0 {
		return 0
	}
	gain := e.level(held) * (1 - (elapsed-held)/e.Release)
	if gain < 0 {
		return 0
	}
	return gain
}

// Tail returns how long the envelope keeps sounding after note-off.
func (e ADSR) Tail() float64 {
	if e.Release < 0 {
		return 0
	}
	return e.Release
}

// level is the held-note gain at t seconds after note-on.
func (e ADSR) level(t float64) float64 {
	if t < e.Attack {
		return t / e.Attack
	}
	if t < e.Attack+e.Decay {
		return 1 - (t-e.Attack)/e.Decay*(1-e.Sustain)
	}
	return e.Sustain
}

// AD is a simple linear attack/decay ramp with no sustain or release:
// gain rises 0 to 1 over attack, falls back to 0 over decay, and is 0
// outside [0, attack+decay]. attack and decay are in seconds.
func AD(relativeT, attack, decay float64) float64 {
	if relativeT < 0 {
		return 0
	}
	if relativeT < attack {
		return relativeT / attack
	}
	if relativeT < attack+decay {
		return 1 - (relativeT-attack)/decay
	}
	return 0
}
