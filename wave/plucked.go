// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"math"

	"github.com/ik5/synthgen/filter"
)

// Plucked returns a Karplus-Strong plucked-string generator at frequency Hz.
// decay in (0, 1) controls string damping; seed makes the initial noise
// burst reproducible.
//
// The underlying engine is stateful and strictly sequential, so the returned
// Func memoizes generated samples: time is mapped to the nearest sample
// index at sampleRate, the string is advanced as far as needed, and earlier
// indices replay the memoized value. This keeps the Func contract (any t,
// any order) on top of the sequential engine.
func Plucked(frequency, decay float64, sampleRate int, seed int64) (Func, error) {
	ks, err := filter.NewKarplusStrong(frequency, decay, sampleRate, seed)
	if err != nil {
		return nil, err
	}

	var generated []float64
	return func(t float64) float64 {
		if t < 0 {
			return 0
		}
		i := int(math.Round(t * float64(sampleRate)))
		for len(generated) <= i {
			generated = append(generated, ks.Tick())
		}
		return generated[i]
	}, nil
}
