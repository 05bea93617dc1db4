// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"io"

	"github.com/gopxl/beep"

	"github.com/ik5/notesynth/audio"
)

var _ beep.Streamer = (*Streamer)(nil)

// Streamer feeds an audio.Source to beep. Mono sources play on both
// channels; sources with more than two channels play their first two.
type Streamer struct {
	src  audio.Source
	buf  []float32
	err  error
	done bool
}

func NewStreamer(src audio.Source) *Streamer {
	return &Streamer{src: src}
}

// Stream fills samples until the source runs dry. It returns ok=false only
// once nothing at all could be produced.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	if s.done {
		return 0, false
	}

	ch := max(s.src.Channels(), 1)
	filled := 0
	for filled < len(samples) {
		want := (len(samples) - filled) * ch
		if cap(s.buf) < want {
			s.buf = make([]float32, want)
		}

		n, err := s.src.ReadSamples(s.buf[:want])
		frames := n / ch
		for f := range frames {
			l := float64(s.buf[f*ch])
			r := l
			if ch > 1 {
				r = float64(s.buf[f*ch+1])
			}
			samples[filled+f] = [2]float64{l, r}
		}
		filled += frames

		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			s.done = true
			break
		}
		if n == 0 {
			s.err = io.ErrNoProgress
			s.done = true
			break
		}
	}

	return filled, filled > 0
}

// Err reports the first non-EOF error from the source.
func (s *Streamer) Err() error { return s.err }
