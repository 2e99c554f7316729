// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"io"
	"math"
	"sync"

	"github.com/ik5/synthgen/midi"
	"github.com/ik5/synthgen/wave"
)

// Instrument builds a generator for a note frequency in Hz.
type Instrument func(frequency float64) wave.Func

type voiceKey struct {
	channel   uint8
	frequency float64
}

// voicesFromTimeline pairs timeline points into voices. A point with
// Gain > 0 opens a voice; the next Gain == 0 point on the same channel and
// frequency closes the oldest open one. Voices come out in opening order,
// which is also the mixing order. Never-closed voices run to the timeline's
// end.
func voicesFromTimeline(tl *midi.Timeline, instrument Instrument, opts Options) []*Voice {
	var (
		voices []*Voice
		open   = map[voiceKey][]*Voice{}
	)

	for _, p := range tl.Points {
		key := voiceKey{channel: p.Channel, frequency: p.Frequency}

		if p.Gain == 0 {
			stack := open[key]
			if len(stack) == 0 {
				continue
			}
			stack[0].Offset = p.Time
			open[key] = stack[1:]
			continue
		}

		v := &Voice{
			Gen:     instrument(p.Frequency),
			Env:     opts.Envelope,
			Channel: p.Channel,
			Onset:   p.Time,
			Offset:  tl.Duration(),
			Gain:    p.Gain,
		}
		if opts.NewChain != nil {
			v.Chain = opts.NewChain()
		}
		voices = append(voices, v)
		open[key] = append(open[key], v)
	}

	return voices
}

// timelineSource mixes a voice arena across the sample grid. Voices are
// summed in opening order; with several workers, each worker owns a
// contiguous run of voices and the per-run partial sums are joined in run
// order, so output is reproducible for a fixed Options value.
type timelineSource struct {
	voices   []*Voice
	rate     int
	headroom float64
	workers  int

	total int
	i     int

	// window of voices that may still sound: [live, len(voices)); voices
	// before live have been retired.
	live int

	scratch [][]float64
	err     error
}

// NewTimelineSource renders tl with the given instrument. The stream mixes
// all voices additively, divides by opts.Headroom, and ends after
// opts.Duration seconds (or once the last voice is silent when zero).
// Duration maps to int(duration * rate) samples, fractions truncated, same
// as every other source in this package.
func NewTimelineSource(tl *midi.Timeline, instrument Instrument, opts Options) Source {
	opts = opts.withDefaults()
	voices := voicesFromTimeline(tl, instrument, opts)

	length := opts.Duration
	if length <= 0 {
		for _, v := range voices {
			length = math.Max(length, v.end())
		}
	}

	workers := min(opts.Workers, max(len(voices), 1))
	scratch := make([][]float64, workers)

	return &timelineSource{
		voices:   voices,
		rate:     opts.SampleRate,
		headroom: opts.Headroom,
		workers:  workers,
		total:    int(length * float64(opts.SampleRate)),
		scratch:  scratch,
	}
}

func (s *timelineSource) SampleRate() int { return s.rate }

func (s *timelineSource) ReadSamples(dst []float64) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.i >= s.total {
		return 0, io.EOF
	}

	n := min(len(dst), s.total-s.i)
	blockStart := float64(s.i) / float64(s.rate)

	// Retire voices that were silent before this block began. Voices are in
	// onset order, not end order, so only the leading run can be dropped.
	for s.live < len(s.voices) && s.voices[s.live].end() < blockStart {
		s.live++
	}

	active := s.voices[s.live:]
	if s.workers > 1 && len(active) > 1 {
		s.mixParallel(active, dst[:n])
	} else {
		s.mixSerial(active, dst[:n])
	}

	for i := range n {
		out := dst[i] / s.headroom
		if math.IsNaN(out) || math.IsInf(out, 0) {
			s.err = ErrNumericOverflow
			return i, s.err
		}
		dst[i] = out
	}

	s.i += n
	if s.i >= s.total {
		return n, io.EOF
	}
	return n, nil
}

func (s *timelineSource) mixSerial(active []*Voice, dst []float64) {
	for i := range dst {
		t := float64(s.i+i) / float64(s.rate)
		var sum float64
		for _, v := range active {
			sum += v.sample(t)
		}
		dst[i] = sum
	}
}

// mixParallel splits active voices into contiguous runs, one per worker.
// Each worker exclusively owns its run's filter state; the join below adds
// the runs' partial sums in run order, keeping summation order fixed.
func (s *timelineSource) mixParallel(active []*Voice, dst []float64) {
	workers := min(s.workers, len(active))
	per := (len(active) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := range workers {
		lo := w * per
		hi := min(lo+per, len(active))

		if cap(s.scratch[w]) < len(dst) {
			s.scratch[w] = make([]float64, len(dst))
		}
		buf := s.scratch[w][:len(dst)]

		wg.Add(1)
		go func(run []*Voice, buf []float64) {
			defer wg.Done()
			for i := range buf {
				t := float64(s.i+i) / float64(s.rate)
				var sum float64
				for _, v := range run {
					sum += v.sample(t)
				}
				buf[i] = sum
			}
		}(active[lo:hi], buf)
	}
	wg.Wait()

	for i := range dst {
		var sum float64
		for w := range workers {
			sum += s.scratch[w][i]
		}
		dst[i] = sum
	}
}
