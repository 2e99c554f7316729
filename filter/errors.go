// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the base error for every construction-time
// validation failure in this package. Specific sentinels wrap it, so
// errors.Is(err, ErrInvalidParameter) matches them all.
var ErrInvalidParameter = errors.New("invalid filter parameter")

var (
	ErrBadSampleRate     = fmt.Errorf("%w: sample rate must be positive", ErrInvalidParameter)
	ErrCutoffOutOfRange  = fmt.Errorf("%w: cutoff must be in (0, sampleRate/2)", ErrInvalidParameter)
	ErrNonPositiveQ      = fmt.Errorf("%w: Q must be positive", ErrInvalidParameter)
	ErrBadDelayLength    = fmt.Errorf("%w: delay length must be positive", ErrInvalidParameter)
	ErrUnstableFeedback  = fmt.Errorf("%w: |feedback| must be below 1", ErrInvalidParameter)
	ErrUnstableDampening = fmt.Errorf("%w: |dampening| must be below 1", ErrInvalidParameter)
	ErrBadFrequency      = fmt.Errorf("%w: frequency must be in (0, sampleRate/2]", ErrInvalidParameter)
	ErrBadDecay          = fmt.Errorf("%w: decay must be in (0, 1)", ErrInvalidParameter)
)
