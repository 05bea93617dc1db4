// SPDX-License-Identifier: EPL-2.0

// Package pitch resolves scientific pitch notation to equal-tempered
// frequencies referenced to A4 = 440 Hz.
//
// A note name is a letter A-G, an optional accidental ('b' flat, '#' sharp)
// and a single octave digit:
//
//	freq, err := pitch.Frequency("C#4")
//	// freq ≈ 277.18
//
// The octave number increments between B and C, so C4 sits nine semitones
// below A4 and B4 two semitones above it.
//
// Malformed names return a *NoteError wrapping one of ErrInvalidNoteFormat,
// ErrUnknownPitchLetter, ErrInvalidAccidental or ErrInvalidOctaveDigit:
//
//	if _, err := pitch.Parse("H4"); errors.Is(err, pitch.ErrUnknownPitchLetter) {
//	    // ...
//	}
package pitch
