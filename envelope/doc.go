// SPDX-License-Identifier: EPL-2.0

// Package envelope provides time-varying gain shapes for notes.
//
// ADSR is the usual attack/decay/sustain/release envelope. It is a pure
// function of elapsed time and the note's held duration, so it carries no
// per-note state and one value can shape any number of voices.
package envelope
