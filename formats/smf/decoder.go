// SPDX-License-Identifier: EPL-2.0

package smf

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/synthgen/midi"
)

// Song is a decoded format-0 file: note events and tempo changes in tick
// order, plus the file's ticks-per-quarter-note division.
type Song struct {
	Division int
	Events   []midi.NoteEvent
	Tempos   []midi.TempoChange
}

const (
	magicHeader = 0x4d546864 // "MThd"
	magicTrack  = 0x4d54726b // "MTrk"

	metaEndOfTrack = 0x2f
	metaTempo      = 0x51
)

// Decode reads a format-0 Standard MIDI File.
func Decode(r io.Reader) (*Song, error) {
	var header struct {
		Magic    uint32
		Length   uint32
		Format   uint16
		Tracks   uint16
		Division uint16
	}
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	if header.Magic != magicHeader || header.Length != 6 {
		return nil, ErrNotMidiFile
	}
	if header.Format != 0 || header.Tracks != 1 {
		return nil, ErrUnsupportedFormat
	}
	if header.Division&0x8000 != 0 {
		return nil, ErrUnsupportedDivision
	}

	var track struct {
		Magic  uint32
		Length uint32
	}
	if err := binary.Read(r, binary.BigEndian, &track); err != nil {
		return nil, fmt.Errorf("reading track header: %w", err)
	}
	if track.Magic != magicTrack {
		return nil, ErrNotMidiFile
	}

	body := make([]byte, track.Length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("reading track body: %w", err)
	}

	song := &Song{Division: int(header.Division)}
	if err := parseTrack(body, song); err != nil {
		return nil, err
	}
	return song, nil
}

// trackParser walks one MTrk body. Events use running status: a data byte
// where a status byte is expected reuses the previous channel status.
type trackParser struct {
	data []byte
	pos  int

	tick   int
	status byte // current channel status byte, 0 when cancelled
	done   bool
}

func parseTrack(body []byte, song *Song) error {
	p := &trackParser{data: body}

	for !p.done && p.pos < len(p.data) {
		delta, err := p.variableNumber()
		if err != nil {
			return err
		}
		p.tick += delta

		if err := p.event(song); err != nil {
			return err
		}
	}

	return nil
}

func (p *trackParser) event(song *Song) error {
	b, err := p.byte()
	if err != nil {
		return err
	}

	switch {
	case b == 0xff:
		return p.metaEvent(song)
	case b == 0xf0 || b == 0xf7:
		// Sysex: length-prefixed payload, discarded.
		p.status = 0
		n, err := p.variableNumber()
		if err != nil {
			return err
		}
		return p.skip(n)
	case b >= 0x80:
		p.status = b
	default:
		// Running status: b is the first data byte of a repeated status.
		if p.status == 0 {
			return ErrMalformedEvent
		}
		p.pos--
	}

	return p.channelEvent(song)
}

func (p *trackParser) channelEvent(song *Song) error {
	kind := p.status >> 4
	channel := p.status & 0x0f

	var value1, value2 byte
	var err error
	switch kind {
	case 0x8, 0x9, 0xa, 0xb, 0xe: // two data bytes
		if value1, err = p.byte(); err != nil {
			return err
		}
		if value2, err = p.byte(); err != nil {
			return err
		}
	case 0xc, 0xd: // one data byte
		if value1, err = p.byte(); err != nil {
			return err
		}
	default:
		return ErrMalformedEvent
	}

	switch kind {
	case 0x8:
		song.Events = append(song.Events, midi.NoteEvent{
			Tick:     p.tick,
			Channel:  channel,
			Pitch:    value1,
			Velocity: value2,
			Kind:     midi.NoteOff,
		})
	case 0x9:
		// NoteOn with velocity 0 is NoteOff on the wire; midi.Build treats
		// it as such, so the event is kept as parsed.
		song.Events = append(song.Events, midi.NoteEvent{
			Tick:     p.tick,
			Channel:  channel,
			Pitch:    value1,
			Velocity: value2,
			Kind:     midi.NoteOn,
		})
	}

	return nil
}

func (p *trackParser) metaEvent(song *Song) error {
	p.status = 0

	kind, err := p.byte()
	if err != nil {
		return err
	}
	length, err := p.variableNumber()
	if err != nil {
		return err
	}

	switch kind {
	case metaEndOfTrack:
		p.done = true
		return p.skip(length)

	case metaTempo:
		if length != 3 {
			return ErrMalformedEvent
		}
		b1, _ := p.byte()
		b2, _ := p.byte()
		b3, err := p.byte()
		if err != nil {
			return err
		}
		song.Tempos = append(song.Tempos, midi.TempoChange{
			Tick:             p.tick,
			MicrosPerQuarter: int(b1)<<16 | int(b2)<<8 | int(b3),
		})
		return nil

	default:
		return p.skip(length)
	}
}

// variableNumber reads a variable-length quantity: 7 bits per byte, high
// bit set on every byte but the last. The format caps the encoding at four
// bytes (28 bits); a longer run is corruption, not a bigger number.
func (p *trackParser) variableNumber() (int, error) {
	var value int
	for i := 0; i < 4; i++ {
		b, err := p.byte()
		if err != nil {
			return 0, err
		}
		value = value<<7 | int(b&0x7f)
		if b < 0x80 {
			return value, nil
		}
	}
	return 0, ErrMalformedEvent
}

func (p *trackParser) byte() (byte, error) {
	if p.pos >= len(p.data) {
		return 0, ErrTruncatedTrack
	}
	b := p.data[p.pos]
	p.pos++
	return b, nil
}

func (p *trackParser) skip(n int) error {
	if n < 0 || p.pos+n > len(p.data) {
		return ErrTruncatedTrack
	}
	p.pos += n
	return nil
}
