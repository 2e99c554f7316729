// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"github.com/ik5/synthgen/utils"
)

// Table holds decoded mono samples for sample-based playback.
// Samples are normalized to [-1, 1]; Rate is the rate they were recorded at.
type Table struct {
	Samples []float64
	Rate    int
}

// Duration returns the playback length of the table in seconds at its
// recorded rate.
func (tbl Table) Duration() float64 {
	if tbl.Rate <= 0 {
		return 0
	}
	return float64(len(tbl.Samples)) / float64(tbl.Rate)
}

// NewSampler returns a generator that plays back tbl. playbackRate scales
// speed and pitch: 1.0 plays at the recorded pitch, 2.0 one octave up.
// Positions between samples are cubically interpolated; times past the end
// of the table are silent.
func NewSampler(tbl Table, playbackRate float64) Func {
	return func(t float64) float64 {
		if t < 0 || len(tbl.Samples) == 0 {
			return 0
		}

		pos := t * playbackRate * float64(tbl.Rate)
		i := int(pos)
		if i >= len(tbl.Samples) {
			return 0
		}

		frac := pos - float64(i)
		y1 := tbl.Samples[i]

		// Duplicate edge samples so interpolation works at both ends.
		y0 := y1
		if i > 0 {
			y0 = tbl.Samples[i-1]
		}
		y2 := y1
		if i+1 < len(tbl.Samples) {
			y2 = tbl.Samples[i+1]
		}
		y3 := y2
		if i+2 < len(tbl.Samples) {
			y3 = tbl.Samples[i+2]
		}

		return utils.Clamp(utils.CubicInterpolate(y0, y1, y2, y3, frac), -1, 1)
	}
}
