// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/synthgen/formats/internal/pcm"
	"github.com/ik5/synthgen/wave"
)

// LoadTable decodes an MP3 stream into a mono sample table normalized to
// [-1, 1].
func LoadTable(r io.Reader) (wave.Table, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return wave.Table{}, fmt.Errorf("opening mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return wave.Table{}, fmt.Errorf("decoding mp3: %w", err)
	}

	// go-mp3 emits 16-bit little-endian PCM, stereo interleaved.
	data := make([]int16, len(raw)/2)
	for i := range data {
		data[i] = int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
	}

	return wave.Table{
		Samples: pcm.Int16sToMono(data, 2),
		Rate:    dec.SampleRate(),
	}, nil
}
