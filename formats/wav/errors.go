// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile = errors.New("not a WAV file")
	ErrNoData     = errors.New("WAV file has no sample data")
)
