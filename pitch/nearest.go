// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"errors"
	"math"
)

// ErrOutOfRange indicates a pitch below C0 or above B9, which no
// single-digit note name can spell.
var ErrOutOfRange = errors.New("pitch outside octaves 0-9")

// chromatic spells the twelve steps from C upward with sharps.
var chromatic = [OctaveSemitones]Pitch{
	{Letter: 'C'}, {Letter: 'C', Accidental: Sharp},
	{Letter: 'D'}, {Letter: 'D', Accidental: Sharp},
	{Letter: 'E'},
	{Letter: 'F'}, {Letter: 'F', Accidental: Sharp},
	{Letter: 'G'}, {Letter: 'G', Accidental: Sharp},
	{Letter: 'A'}, {Letter: 'A', Accidental: Sharp},
	{Letter: 'B'},
}

// c4Offset is the distance from C4 up to A4.
const c4Offset = 9

// AtSemitones returns the sharp spelling of the note n semitones from A4.
func AtSemitones(n int) (Pitch, error) {
	fromC := n + c4Offset
	octaves := int(math.Floor(float64(fromC) / OctaveSemitones))

	p := chromatic[fromC-octaves*OctaveSemitones]
	p.Octave = ReferenceOctave + octaves
	if p.Octave < 0 || p.Octave > 9 {
		return Pitch{}, ErrOutOfRange
	}
	return p, nil
}

// Nearest returns the note closest to freq and how far freq lies from it
// in cents, within ±50.
func Nearest(freq float64) (Pitch, float64, error) {
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq <= 0 {
		return Pitch{}, 0, ErrOutOfRange
	}

	exact := OctaveSemitones * math.Log2(freq/ReferenceFrequency)
	n := int(math.Round(exact))

	p, err := AtSemitones(n)
	if err != nil {
		return Pitch{}, 0, err
	}
	return p, (exact - float64(n)) * 100, nil
}
