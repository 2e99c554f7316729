// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/synthgen/formats/internal/pcm"
	"github.com/ik5/synthgen/wave"
)

// LoadTable decodes an Ogg Vorbis stream into a mono sample table
// normalized to [-1, 1].
func LoadTable(r io.Reader) (wave.Table, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return wave.Table{}, fmt.Errorf("decoding vorbis: %w", err)
	}

	return wave.Table{
		Samples: pcm.Float32sToMono(data, format.Channels),
		Rate:    format.SampleRate,
	}, nil
}
