// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/synthgen/formats/internal/pcm"
	"github.com/ik5/synthgen/wave"
)

// LoadTable decodes an AIFF stream into a mono sample table normalized to
// [-1, 1].
func LoadTable(rs io.ReadSeeker) (wave.Table, error) {
	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return wave.Table{}, ErrNotAiffFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return wave.Table{}, fmt.Errorf("decoding aiff: %w", err)
	}
	if buf == nil || len(buf.Data) == 0 {
		return wave.Table{}, ErrNoData
	}

	return wave.Table{
		Samples: pcm.IntsToMono(buf.Data, buf.Format.NumChannels, int(dec.BitDepth)),
		Rate:    buf.Format.SampleRate,
	}, nil
}
