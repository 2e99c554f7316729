// SPDX-License-Identifier: EPL-2.0

package midi

// Kind distinguishes note events.
type Kind int

const (
	NoteOn Kind = iota
	NoteOff
)

func (k Kind) String() string {
	switch k {
	case NoteOn:
		return "note-on"
	case NoteOff:
		return "note-off"
	default:
		return "unknown"
	}
}

// NoteEvent is one note transition at an absolute tick position.
// A NoteOn with velocity 0 means NoteOff, as in the MIDI wire format.
type NoteEvent struct {
	Tick     int
	Channel  uint8
	Pitch    uint8
	Velocity uint8
	Kind     Kind
}

// off reports whether the event terminates a note.
func (e NoteEvent) off() bool {
	return e.Kind == NoteOff || (e.Kind == NoteOn && e.Velocity == 0)
}

// TempoChange sets the tempo, in microseconds per quarter note, from Tick
// onward.
type TempoChange struct {
	Tick             int
	MicrosPerQuarter int
}

// DefaultTempo is the MIDI default of 120 beats per minute.
const DefaultTempo = 500_000
