// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      float64
		lo, hi float64
		want   float64
	}{
		{name: "inside range", x: 0.5, lo: -1, hi: 1, want: 0.5},
		{name: "below range", x: -2.5, lo: -1, hi: 1, want: -1},
		{name: "above range", x: 3.7, lo: -1, hi: 1, want: 1},
		{name: "at lower bound", x: -1, lo: -1, hi: 1, want: -1},
		{name: "at upper bound", x: 1, lo: -1, hi: 1, want: 1},
		{name: "zero", x: 0, lo: -1, hi: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
