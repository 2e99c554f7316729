// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"
	"testing"
)

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	var c Chain
	if got := c.Step(0.5); got != 0.5 {
		t.Errorf("empty chain Step(0.5) = %v, want 0.5", got)
	}
}

func TestChain_AppliesStagesInOrder(t *testing.T) {
	t.Parallel()

	lp, err := NewBiquad(LowPass, 1000, math.Sqrt2/2, sampleRate)
	if err != nil {
		t.Fatalf("NewBiquad() error = %v", err)
	}
	hp, err := NewBiquad(HighPass, 100, math.Sqrt2/2, sampleRate)
	if err != nil {
		t.Fatalf("NewBiquad() error = %v", err)
	}

	chain := Chain{lp, hp}

	// A mid-band tone passes both stages.
	var peak float64
	for i := range sampleRate {
		tm := float64(i) / sampleRate
		out := chain.Step(math.Sin(2 * math.Pi * 440 * tm))
		if i > sampleRate/2 {
			peak = math.Max(peak, math.Abs(out))
		}
	}
	if peak < 0.8 {
		t.Errorf("mid-band peak = %v, want > 0.8", peak)
	}

	// The chained result must equal running the stages separately.
	lp2, _ := NewBiquad(LowPass, 1000, math.Sqrt2/2, sampleRate)
	hp2, _ := NewBiquad(HighPass, 100, math.Sqrt2/2, sampleRate)
	chained := Chain{lp2, hp2}

	lp3, _ := NewBiquad(LowPass, 1000, math.Sqrt2/2, sampleRate)
	hp3, _ := NewBiquad(HighPass, 100, math.Sqrt2/2, sampleRate)

	for i := range 1000 {
		in := math.Sin(float64(i) / 7)
		if got, want := chained.Step(in), hp3.Step(lp3.Step(in)); got != want {
			t.Fatalf("sample %d: chain %v, manual %v", i, got, want)
		}
	}
}

func TestChain_MixedStages(t *testing.T) {
	t.Parallel()

	bq, err := NewBiquad(LowPass, 2000, math.Sqrt2/2, sampleRate)
	if err != nil {
		t.Fatalf("NewBiquad() error = %v", err)
	}
	comb, err := NewComb(0.01, sampleRate, 0.5, 0.5, 0.5)
	if err != nil {
		t.Fatalf("NewComb() error = %v", err)
	}
	ap, err := NewAllPassDelay(0.005, sampleRate, 0.5)
	if err != nil {
		t.Fatalf("NewAllPassDelay() error = %v", err)
	}

	chain := Chain{bq, comb, ap}
	for i := range 10000 {
		out := chain.Step(math.Sin(float64(i) / 10))
		if math.IsNaN(out) || math.IsInf(out, 0) {
			t.Fatalf("sample %d: chain produced %v", i, out)
		}
	}
}
