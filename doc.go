// SPDX-License-Identifier: EPL-2.0

// Package notesynth turns songs written as note lists into sound.
//
// A song is a JSON array of {"note": "A4", "duration": 0.5} records. Each
// note is resolved to a frequency in twelve-tone equal temperament with
// A4 = 440 Hz, rendered as a 44.1 kHz mono sine at half amplitude, and
// followed by 5 ms of silence:
//
//	lib := song.Library{Dir: "songs"}
//	notes, _ := lib.Load("scale")
//
//	seq, err := notesynth.Compose(notes)
//	err = player.New().Play(ctx, seq)
//
// The same sequence can be written to disk instead:
//
//	out, _ := os.Create("scale.wav")
//	err := notesynth.RenderWAV(out, notes, 48000)
//
// # Packages
//
//   - pitch: note names to frequencies
//   - audio: sample streams, tones, sequences, resampling, measurement
//   - sequencer: note lists to sequences
//   - song: JSON song files and the songs directory
//   - player: speaker output through beep
//   - formats/...: WAV, AIFF, MP3 and Ogg Vorbis codecs
//
// Inspect and NewRegistry read existing audio files back, which is handy
// for checking a render.
package notesynth
