// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//
// Samples are produced as interleaved float32 at the stream's own rate and
// channel layout. Reads are trimmed to whole frames, so a destination
// shorter than one frame reads nothing.
package vorbis
