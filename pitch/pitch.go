// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"math"
	"strconv"
)

const (
	// ReferenceFrequency is the concert pitch of A4 in Hz.
	ReferenceFrequency = 440.0

	// ReferenceOctave is the octave number that contains A4.
	ReferenceOctave = 4

	// OctaveSemitones is the number of equal-tempered steps per octave.
	OctaveSemitones = 12
)

// Accidental raises or lowers a letter by semitones.
type Accidental int

const (
	Flat    Accidental = -1
	Natural Accidental = 0
	Sharp   Accidental = 1
)

func (a Accidental) String() string {
	switch a {
	case Flat:
		return "b"
	case Sharp:
		return "#"
	default:
		return ""
	}
}

// letterOffsets are semitones from A within the same octave number.
var letterOffsets = map[byte]int{
	'A': 0,
	'B': 2,
	'C': -9,
	'D': -7,
	'E': -5,
	'F': -4,
	'G': -2,
}

// Pitch is a parsed note name.
type Pitch struct {
	Letter     byte
	Accidental Accidental
	Octave     int
}

// Parse validates name and splits it into its parts. The letter is checked
// before the accidental, and the accidental before the octave digit.
func Parse(name string) (Pitch, error) {
	if len(name) != 2 && len(name) != 3 {
		return Pitch{}, &NoteError{Note: name, Err: ErrInvalidNoteFormat}
	}

	if _, ok := letterOffsets[name[0]]; !ok {
		return Pitch{}, &NoteError{Note: name, Err: ErrUnknownPitchLetter}
	}
	p := Pitch{Letter: name[0]}

	if len(name) == 3 {
		switch name[1] {
		case 'b':
			p.Accidental = Flat
		case '#':
			p.Accidental = Sharp
		default:
			return Pitch{}, &NoteError{Note: name, Err: ErrInvalidAccidental}
		}
	}

	digit := name[len(name)-1]
	if digit < '0' || digit > '9' {
		return Pitch{}, &NoteError{Note: name, Err: ErrInvalidOctaveDigit}
	}
	p.Octave = int(digit - '0')

	return p, nil
}

// Semitones returns the signed distance from A4.
func (p Pitch) Semitones() int {
	return letterOffsets[p.Letter] + (p.Octave-ReferenceOctave)*OctaveSemitones + int(p.Accidental)
}

// Frequency returns the equal-tempered frequency in Hz.
func (p Pitch) Frequency() float64 {
	return FromSemitones(p.Semitones())
}

func (p Pitch) String() string {
	return string(p.Letter) + p.Accidental.String() + strconv.Itoa(p.Octave)
}

// FromSemitones returns the frequency n semitones away from A4.
func FromSemitones(n int) float64 {
	return ReferenceFrequency * math.Pow(2, float64(n)/OctaveSemitones)
}

// Frequency parses name and returns its frequency in Hz.
func Frequency(name string) (float64, error) {
	p, err := Parse(name)
	if err != nil {
		return 0, err
	}

	return p.Frequency(), nil
}
