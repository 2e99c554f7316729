// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile = errors.New("not an AIFF file")
	ErrNoData      = errors.New("AIFF file has no sample data")
)
