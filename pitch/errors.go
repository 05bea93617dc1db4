// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNoteFormat indicates a note name that is not 2 or 3 characters long.
	ErrInvalidNoteFormat = errors.New("invalid note format")

	// ErrUnknownPitchLetter indicates a first character outside A-G.
	ErrUnknownPitchLetter = errors.New("unknown pitch letter")

	// ErrInvalidAccidental indicates a middle character other than 'b' or '#'.
	ErrInvalidAccidental = errors.New("invalid accidental")

	// ErrInvalidOctaveDigit indicates a final character that is not a decimal digit.
	ErrInvalidOctaveDigit = errors.New("invalid octave digit")
)

// NoteError records the note name that failed to parse.
type NoteError struct {
	Note string
	Err  error
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("note %q: %v", e.Note, e.Err)
}

func (e *NoteError) Unwrap() error { return e.Err }
