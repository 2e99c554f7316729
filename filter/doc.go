// SPDX-License-Identifier: EPL-2.0

// Package filter provides stateful digital filters and stateless FIR design.
//
// # Stateful filters
//
// Stateful filters consume one input sample per Step call and retain exactly
// the recursion memory their difference equation requires. Step must be
// called in strict time order: calling out of order or skipping samples
// corrupts the recursion state, and that is a caller error, not something
// the filter detects or recovers from. Parameters are validated once at
// construction; Step itself never fails.
//
//	lp, err := filter.NewBiquad(filter.LowPass, 400, 0.7, 44100)
//	if err != nil {
//	    return err
//	}
//	for i, sample := range samples {
//	    samples[i] = lp.Step(sample)
//	}
//
// Biquads (LowPass, HighPass, BandPass, BandReject, AllPass) derive their
// coefficients from the RBJ audio-EQ cookbook. DelayLine, Comb and
// AllPassDelay are ring-buffer feedback structures. KarplusStrong couples
// generation and filtering into one stateful plucked-string unit.
//
// Filters compose with Chain:
//
//	chain := filter.Chain{lp, comb}
//	out := chain.Step(in)
//
// # Stateless filters
//
// LowPassFIR and friends design windowed-sinc kernels which are applied to
// whole sample slices with Convolve:
//
//	kernel := filter.LowPassFIR(filter.CutoffRatio(400, 44100), 0.01)
//	filtered := filter.Convolve(kernel, samples)
package filter
