// SPDX-License-Identifier: EPL-2.0

// Package midi converts ordered note events into an absolute-time schedule.
//
// The input is a stream of NoteEvents (absolute ticks, channel, pitch,
// velocity) plus tempo metadata; binary file parsing lives in formats/smf
// and yields exactly this shape. Build turns events into a Timeline of
// (time in seconds, channel, frequency in Hz, gain) points:
//
//	tl, err := midi.Build(events, tempos, division)
//
// A point with Gain > 0 opens a note, a point with Gain == 0 closes the
// matching open note on the same channel and frequency. Tempo changes apply
// prospectively: events before a change are converted at the prior rate.
// A NoteOff with no matching open note is ignored; a NoteOn that is never
// closed sounds until the end of the stream. Events must arrive in
// non-decreasing tick order or Build fails with ErrEventOrder.
package midi
