// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes uncompressed AIFF files on top of
// github.com/go-audio/aiff.
//
// AIFF stores the same integer PCM as WAV, big-endian, with the sample rate
// as an 80-bit float. Both differences are handled by go-audio.
//
//	src, err := aiff.Decoder{}.Decode(file)
//
//	out, _ := os.Create("song.aiff")
//	err = aiff.Encode(out, seq, 16)
//
// AIFF-C (compressed) files are rejected with ErrNotAiffFile or
// ErrUnsupportedBitDepth, depending on how far the header parses.
package aiff
