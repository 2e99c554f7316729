// SPDX-License-Identifier: EPL-2.0

// Package vorbis loads Ogg Vorbis files into sample tables for
// sample-based playback.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Vorbis data.
package vorbis
