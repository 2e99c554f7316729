// SPDX-License-Identifier: EPL-2.0

package smf

import "errors"

var (
	ErrNotMidiFile         = errors.New("not a standard MIDI file")
	ErrUnsupportedFormat   = errors.New("only single-track format 0 files supported")
	ErrUnsupportedDivision = errors.New("SMPTE time division not supported")
	ErrTruncatedTrack      = errors.New("track chunk ends mid-event")
	ErrMalformedEvent      = errors.New("malformed event")
)
