// SPDX-License-Identifier: EPL-2.0

// Package synthtest provides test helpers shared across the module's
// test suites.
package synthtest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates mono audio data.
// It implements the synth.Source interface (without importing it to
// avoid cycles).
type MockSource struct {
	sampleRate   int
	totalSamples int
	generated    int
	waveform     func(sample int) float64
}

// NewMockSource creates a mock source producing totalSamples samples,
// each computed by waveform from its index.
func NewMockSource(sampleRate, totalSamples int, waveform func(sample int) float64) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(int) float64 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(sample int) float64 {
		t := float64(sample) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewConstantSource creates a mock source with a constant value.
func NewConstantSource(sampleRate, totalSamples int, value float64) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(int) float64 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }

// Reset resets the generated sample counter to allow re-reading.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float64) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	n := len(dst)
	if available := m.totalSamples - m.generated; n > available {
		n = available
	}

	for i := range n {
		dst[i] = m.waveform(m.generated + i)
	}
	m.generated += n

	if m.generated >= m.totalSamples {
		return n, io.EOF
	}

	return n, nil
}
