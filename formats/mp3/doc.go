// SPDX-License-Identifier: EPL-2.0

// Package mp3 loads MP3 files into sample tables for sample-based playback.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 data.
// The decoder always produces 16-bit stereo; LoadTable averages it to mono.
package mp3
