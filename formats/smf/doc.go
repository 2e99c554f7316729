// SPDX-License-Identifier: EPL-2.0

// Package smf decodes format-0 Standard MIDI Files into note events.
//
// Only single-track (format 0) files with metrical time division are in
// scope. The decoder understands variable-length delta times, running
// status, NoteOn/NoteOff, and tempo meta-events; every other event is
// parsed and skipped. The result feeds midi.Build directly:
//
//	song, err := smf.Decode(file)
//	if err != nil {
//	    return err
//	}
//	tl, err := midi.Build(song.Events, song.Tempos, song.Division)
//
// Stream-level corruption (bad magic, truncated track, dangling running
// status) is fatal and surfaced as a sentinel error.
package smf
