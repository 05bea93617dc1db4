// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files on top of
// github.com/go-audio/wav.
//
// # Decoding
//
//	file, _ := os.Open("song.wav")
//	src, err := wav.Decoder{}.Decode(file)
//
// The decoder accepts 8, 16, 24 and 32-bit integer PCM with any channel
// count and sample rate. Samples come out as float32 in [-1, 1). Inputs that
// cannot seek are buffered in memory first.
//
// # Encoding
//
// Encode drains any audio.Source into a file:
//
//	out, _ := os.Create("song.wav")
//	defer out.Close()
//	err := wav.Encode(out, seq, 16)
//
// The writer must implement io.Seeker so the header sizes can be patched
// once the stream ends.
//
// # Errors
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrUnsupportedEncoding: the file is not integer PCM
//   - ErrUnsupportedBitDepth: the bit depth is not 8, 16, 24 or 32
//   - ErrMissingData: no data chunk was found
package wav
