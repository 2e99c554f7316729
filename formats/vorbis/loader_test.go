// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"testing"
)

func TestLoadTable_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := LoadTable(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if err == nil {
		t.Error("LoadTable() error = nil, want error for invalid data")
	}
}

func TestLoadTable_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := LoadTable(bytes.NewReader(nil))
	if err == nil {
		t.Error("LoadTable() error = nil, want error for empty input")
	}
}
