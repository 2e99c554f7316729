// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"io"
)

// Source is a lazy, finite, single-pass stream of mono samples in [-1, 1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// ReadSamples fills dst with samples and returns how many were written.
	// When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float64) (n int, err error)
}

// Collect pulls src to exhaustion and returns every sample.
func Collect(src Source) ([]float64, error) {
	var samples []float64
	buf := make([]float64, 4096)

	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if err == io.EOF {
			return samples, nil
		}
		if err != nil {
			return samples, fmt.Errorf("%w", err)
		}
	}
}

// Collect16 pulls src to exhaustion and quantizes to 16-bit PCM.
func Collect16(src Source) ([]int16, error) {
	var pcm []int16
	buf := make([]float64, 4096)

	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			pcm = append(pcm, Quantize16(buf[i]))
		}

		if err == io.EOF {
			return pcm, nil
		}
		if err != nil {
			return pcm, fmt.Errorf("%w", err)
		}
	}
}
