// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/synthgen/formats/internal/pcm"
	"github.com/ik5/synthgen/wave"
)

// LoadTable decodes a PCM WAV file into a mono sample table normalized to
// [-1, 1]. Multi-channel files are averaged down to mono.
func LoadTable(rs io.ReadSeeker) (wave.Table, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return wave.Table{}, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return wave.Table{}, fmt.Errorf("decoding wav: %w", err)
	}
	if buf == nil || len(buf.Data) == 0 {
		return wave.Table{}, ErrNoData
	}

	return wave.Table{
		Samples: pcm.IntsToMono(buf.Data, buf.Format.NumChannels, int(dec.BitDepth)),
		Rate:    buf.Format.SampleRate,
	}, nil
}
