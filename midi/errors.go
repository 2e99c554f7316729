// SPDX-License-Identifier: EPL-2.0

package midi

import "errors"

var (
	ErrEventOrder  = errors.New("note events must be in non-decreasing tick order")
	ErrTempoOrder  = errors.New("tempo changes must be in non-decreasing tick order")
	ErrBadDivision = errors.New("ticks per quarter note must be positive")
	ErrBadTempo    = errors.New("tempo must be positive microseconds per quarter note")
)
