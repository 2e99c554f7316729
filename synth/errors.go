// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrNumericOverflow reports a NaN or Inf in the mixed signal. The
	// pipeline aborts rather than quantizing corrupted audio.
	ErrNumericOverflow = errors.New("NaN or Inf in mixed signal")

	// ErrBadBitDepth reports an unsupported quantization depth.
	ErrBadBitDepth = errors.New("bit depth must be between 2 and 32")
)
