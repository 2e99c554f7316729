// SPDX-License-Identifier: EPL-2.0

package synthtest

import (
	"errors"
	"io"
)

// SeekBuffer is an in-memory io.ReadWriteSeeker used to exercise the
// format encoders and decoders without touching the filesystem.
type SeekBuffer struct {
	data []byte
	pos  int
}

// NewSeekBuffer returns a SeekBuffer optionally pre-filled with data.
func NewSeekBuffer(data []byte) *SeekBuffer {
	return &SeekBuffer{data: data}
}

// Bytes returns the buffer's current contents.
func (b *SeekBuffer) Bytes() []byte { return b.data }

func (b *SeekBuffer) Read(p []byte) (int, error) {
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += n
	return n, nil
}

func (b *SeekBuffer) Write(p []byte) (int, error) {
	if grow := b.pos + len(p) - len(b.data); grow > 0 {
		b.data = append(b.data, make([]byte, grow)...)
	}
	n := copy(b.data[b.pos:], p)
	b.pos += n
	return n, nil
}

func (b *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(b.pos) + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if pos < 0 {
		return 0, errors.New("negative position")
	}
	b.pos = int(pos)
	return pos, nil
}
