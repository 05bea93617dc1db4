// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
	"time"
)

const (
	// SampleRate is the rate every generated stream runs at.
	SampleRate = 44100

	// Amplitude scales generated tones to keep headroom when streams are
	// concatenated or mixed downstream.
	Amplitude = 0.5

	// DefaultGap is the silence inserted after each note.
	DefaultGap = 5 * time.Millisecond
)

// SampleCount converts seconds to a frame count at SampleRate, rounding half
// away from zero.
func SampleCount(seconds float64) int {
	return int(math.Round(seconds * SampleRate))
}

// Tone is a finite mono sine stream. A zero frequency yields silence.
//
// A Tone is consumed once; build a new one to replay it.
type Tone struct {
	frequency float64
	duration  float64
	current   int
	total     int
}

// NewTone builds a tone of frequency Hz lasting seconds.
func NewTone(frequency, seconds float64) (*Tone, error) {
	if !(frequency >= 0) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("%w: %v", ErrNegativeFrequency, frequency)
	}
	if !(seconds >= 0) || math.IsInf(seconds, 0) {
		return nil, fmt.Errorf("%w: %v", ErrNegativeDuration, seconds)
	}

	return &Tone{
		frequency: frequency,
		duration:  seconds,
		total:     SampleCount(seconds),
	}, nil
}

// NewSilence builds a zero-valued stream lasting d.
func NewSilence(d time.Duration) (*Tone, error) {
	return NewTone(0, d.Seconds())
}

func (t *Tone) SampleRate() int { return SampleRate }
func (t *Tone) Channels() int   { return 1 }
func (t *Tone) BufSize() int    { return 4096 }
func (t *Tone) Close() error    { return nil }

// Frequency in Hz.
func (t *Tone) Frequency() float64 { return t.frequency }

// Len is the total number of samples the tone produces.
func (t *Tone) Len() int { return t.total }

// Position is the index of the next sample.
func (t *Tone) Position() int { return t.current }

// Duration is the length that was requested at construction.
func (t *Tone) Duration() time.Duration {
	return time.Duration(t.duration * float64(time.Second))
}

func (t *Tone) sample(i int) float32 {
	if t.frequency == 0 {
		return 0
	}

	v := math.Sin(2*math.Pi*t.frequency*float64(i)/SampleRate) * Amplitude
	return float32(v)
}

// Next returns the next sample, or false once the tone is exhausted.
func (t *Tone) Next() (float32, bool) {
	if t.current >= t.total {
		return 0, false
	}

	v := t.sample(t.current)
	t.current++

	return v, true
}

func (t *Tone) ReadSamples(dst []float32) (int, error) {
	if t.current >= t.total {
		return 0, io.EOF
	}

	n := min(len(dst), t.total-t.current)
	for i := range n {
		dst[i] = t.sample(t.current + i)
	}
	t.current += n

	return n, nil
}
