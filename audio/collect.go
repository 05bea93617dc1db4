// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"
)

// ReadAll drains src into memory using reads of bufSize samples.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	bufSize -= bufSize % src.Channels()
	if bufSize == 0 {
		bufSize = src.Channels()
	}

	var out []float32
	if l, ok := src.(Lengther); ok {
		out = make([]float32, 0, l.Len()*src.Channels())
	}

	buf := make([]float32, bufSize)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}
		if n == 0 {
			return out, io.ErrNoProgress
		}
	}
}

// Stats summarises a drained source.
type Stats struct {
	SampleRate int
	Channels   int
	Frames     int
	Peak       float32
	RMS        float64
}

// Duration is the play time of the measured frames.
func (s Stats) Duration() time.Duration {
	return FramesToDuration(s.Frames, s.SampleRate)
}

// Measure drains src and reports its length, peak and RMS level across
// all channels.
func Measure(src Source) (Stats, error) {
	st := Stats{SampleRate: src.SampleRate(), Channels: src.Channels()}

	size := src.BufSize()
	size -= size % st.Channels
	if size <= 0 {
		size = 4096 * st.Channels
	}
	buf := make([]float32, size)

	var (
		sum     float64
		samples int
	)
	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			a := float32(math.Abs(float64(v)))
			st.Peak = max(st.Peak, a)
			sum += float64(v) * float64(v)
		}
		samples += n

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, fmt.Errorf("%w", err)
		}
		if n == 0 {
			return st, io.ErrNoProgress
		}
	}

	st.Frames = samples / st.Channels
	if samples > 0 {
		st.RMS = math.Sqrt(sum / float64(samples))
	}

	return st, nil
}
