// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved 16-bit stereo, so the source reports
// two channels regardless of how the stream was encoded. Mono files come out
// with both channels equal; fold them back with audio.NewMonoMixer.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//
// When the input implements io.Seeker the total length is known up front
// and the source implements audio.Lengther.
package mp3
