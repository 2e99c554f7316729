// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"errors"
	"testing"
)

func TestErrors_WrapInvalidParameter(t *testing.T) {
	t.Parallel()

	wrapped := []error{
		ErrBadSampleRate,
		ErrCutoffOutOfRange,
		ErrNonPositiveQ,
		ErrBadDelayLength,
		ErrUnstableFeedback,
		ErrUnstableDampening,
		ErrBadFrequency,
		ErrBadDecay,
	}

	for _, err := range wrapped {
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%v does not wrap ErrInvalidParameter", err)
		}
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrBadSampleRate, ErrBadDecay) {
		t.Error("ErrBadSampleRate matches ErrBadDecay")
	}
	if errors.Is(ErrUnstableFeedback, ErrUnstableDampening) {
		t.Error("ErrUnstableFeedback matches ErrUnstableDampening")
	}
}
