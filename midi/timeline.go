// SPDX-License-Identifier: EPL-2.0

package midi

// Point is one entry of a Timeline: at Time seconds, the note at Frequency
// on Channel changes gain. Gain > 0 opens a note, Gain == 0 closes it.
type Point struct {
	Time      float64
	Channel   uint8
	Frequency float64
	Gain      float64
}

// Timeline is an absolute-time, per-channel frequency/gain schedule derived
// from note events. Points are in non-decreasing Time order.
type Timeline struct {
	Points []Point
}

// Duration returns the time of the last point, in seconds.
func (tl *Timeline) Duration() float64 {
	if len(tl.Points) == 0 {
		return 0
	}
	return tl.Points[len(tl.Points)-1].Time
}

// tickClock converts absolute ticks to seconds while applying tempo changes
// prospectively from their tick position onward.
type tickClock struct {
	tempos      []TempoChange
	division    float64
	lastTick    int
	lastTime    float64
	secsPerTick float64
}

func newTickClock(tempos []TempoChange, division int) (*tickClock, error) {
	if division <= 0 {
		return nil, ErrBadDivision
	}
	for i, tc := range tempos {
		if tc.MicrosPerQuarter <= 0 {
			return nil, ErrBadTempo
		}
		if i > 0 && tc.Tick < tempos[i-1].Tick {
			return nil, ErrTempoOrder
		}
	}

	return &tickClock{
		tempos:      tempos,
		division:    float64(division),
		secsPerTick: DefaultTempo / 1e6 / float64(division),
	}, nil
}

// timeAt returns the absolute time of tick. Ticks must be queried in
// non-decreasing order.
func (c *tickClock) timeAt(tick int) float64 {
	// Consume tempo changes up to and including this tick. A change takes
	// effect at its own tick, so later events on that tick already use it.
	for len(c.tempos) > 0 && c.tempos[0].Tick <= tick {
		tc := c.tempos[0]
		c.tempos = c.tempos[1:]
		c.lastTime += float64(tc.Tick-c.lastTick) * c.secsPerTick
		c.lastTick = tc.Tick
		c.secsPerTick = float64(tc.MicrosPerQuarter) / 1e6 / c.division
	}

	c.lastTime += float64(tick-c.lastTick) * c.secsPerTick
	c.lastTick = tick
	return c.lastTime
}

type noteKey struct {
	channel uint8
	pitch   uint8
}

// Build converts an ordered NoteEvent stream into a Timeline. division is
// the stream's ticks per quarter note; tempos lists tempo changes in tick
// order (the MIDI default of 120 BPM applies before the first change).
//
// An unmatched NoteOff is ignored. A NoteOn never matched by a NoteOff
// sounds until the last event's tick. Overlapping notes on the same channel
// and pitch are independent; a NoteOff closes the oldest open one.
func Build(events []NoteEvent, tempos []TempoChange, division int) (*Timeline, error) {
	clock, err := newTickClock(tempos, division)
	if err != nil {
		return nil, err
	}

	var (
		points []Point
		open   = map[noteKey][]int{} // indices into points, oldest first
		order  []noteKey             // open-note keys in opening order
		last   float64
	)

	for i, ev := range events {
		if i > 0 && ev.Tick < events[i-1].Tick {
			return nil, ErrEventOrder
		}
		t := clock.timeAt(ev.Tick)
		last = t
		key := noteKey{channel: ev.Channel, pitch: ev.Pitch}

		if ev.off() {
			stack := open[key]
			if len(stack) == 0 {
				continue // unmatched NoteOff
			}
			onIdx := stack[0]
			open[key] = stack[1:]
			points = append(points, Point{
				Time:      t,
				Channel:   ev.Channel,
				Frequency: points[onIdx].Frequency,
			})
			continue
		}

		points = append(points, Point{
			Time:      t,
			Channel:   ev.Channel,
			Frequency: Frequency(ev.Pitch),
			Gain:      Gain(ev.Velocity),
		})
		open[key] = append(open[key], len(points)-1)
		order = append(order, key)
	}

	// Close whatever is still sounding at stream end, in opening order.
	for _, key := range order {
		stack := open[key]
		if len(stack) == 0 {
			continue
		}
		onIdx := stack[0]
		open[key] = stack[1:]
		points = append(points, Point{
			Time:      last,
			Channel:   key.channel,
			Frequency: points[onIdx].Frequency,
		})
	}

	return &Timeline{Points: points}, nil
}
