// SPDX-License-Identifier: EPL-2.0

// Package aiff loads AIFF files into sample tables for sample-based
// playback.
//
// This package uses github.com/go-audio/aiff to decode AIFF data.
package aiff
