// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"
	"testing"
)

func TestIntsToMono(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []int
		channels int
		bitDepth int
		want     []float64
	}{
		{
			name:     "mono 16-bit",
			data:     []int{0, 16384, -16384, 32767},
			channels: 1,
			bitDepth: 16,
			want:     []float64{0, 0.5, -0.5, 32767.0 / 32768},
		},
		{
			name:     "stereo averaged",
			data:     []int{16384, -16384, 32768, 0},
			channels: 2,
			bitDepth: 16,
			want:     []float64{0, 0.5},
		},
		{
			name:     "8-bit scale",
			data:     []int{64, -128},
			channels: 1,
			bitDepth: 8,
			want:     []float64{0.5, -1},
		},
		{
			name:     "24-bit scale",
			data:     []int{4194304},
			channels: 1,
			bitDepth: 24,
			want:     []float64{0.5},
		},
		{
			name:     "unknown depth falls back to 16-bit",
			data:     []int{16384},
			channels: 1,
			bitDepth: 12,
			want:     []float64{0.5},
		},
		{
			name:     "zero channels treated as mono",
			data:     []int{16384},
			channels: 0,
			bitDepth: 16,
			want:     []float64{0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := IntsToMono(tt.data, tt.channels, tt.bitDepth)
			if len(got) != len(tt.want) {
				t.Fatalf("length = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("sample %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestInt16sToMono(t *testing.T) {
	t.Parallel()

	got := Int16sToMono([]int16{16384, -16384, 0, 32767}, 2)
	want := []float64{0, 32767.0 / 2 / 32768}

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFloat32sToMono(t *testing.T) {
	t.Parallel()

	got := Float32sToMono([]float32{0.5, -0.5, 1, 0}, 2)
	want := []float64{0, 0.5}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFloat32sToMono_PassthroughMono(t *testing.T) {
	t.Parallel()

	got := Float32sToMono([]float32{0.25, -0.75}, 1)
	if got[0] != 0.25 || got[1] != -0.75 {
		t.Errorf("got %v, want [0.25 -0.75]", got)
	}
}
