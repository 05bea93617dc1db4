// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Sequence plays sources back to back in the order they were appended.
// Each source is drained and closed before the next one is read, so samples
// from different sources never interleave.
type Sequence struct {
	sources    []Source
	head       int
	sampleRate int
	channels   int
}

// NewSequence returns a sequence holding srcs. Every source must share the
// sample rate and channel count of the first.
func NewSequence(srcs ...Source) (*Sequence, error) {
	s := &Sequence{}
	if err := s.Append(srcs...); err != nil {
		return nil, err
	}
	return s, nil
}

// Append queues srcs after everything already in the sequence.
func (s *Sequence) Append(srcs ...Source) error {
	for _, src := range srcs {
		if len(s.sources) == 0 {
			s.sampleRate = src.SampleRate()
			s.channels = src.Channels()
		} else if src.SampleRate() != s.sampleRate || src.Channels() != s.channels {
			return fmt.Errorf("%w: got %d Hz/%d ch, want %d Hz/%d ch",
				ErrFormatMismatch, src.SampleRate(), src.Channels(), s.sampleRate, s.channels)
		}
		s.sources = append(s.sources, src)
	}
	return nil
}

// Sources returns the queued sources in playback order, including drained ones.
func (s *Sequence) Sources() []Source { return s.sources }

// Remaining is the number of sources not yet drained.
func (s *Sequence) Remaining() int { return len(s.sources) - s.head }

func (s *Sequence) SampleRate() int {
	if s.sampleRate == 0 {
		return SampleRate
	}
	return s.sampleRate
}

func (s *Sequence) Channels() int {
	if s.channels == 0 {
		return 1
	}
	return s.channels
}

func (s *Sequence) BufSize() int {
	if s.head < len(s.sources) {
		return s.sources[s.head].BufSize()
	}
	return 4096
}

// Len is the summed frame count of all sources that report one.
func (s *Sequence) Len() int {
	total := 0
	for _, src := range s.sources {
		if l, ok := src.(Lengther); ok {
			total += l.Len()
		}
	}
	return total
}

// Duration is the summed declared duration of all sources.
func (s *Sequence) Duration() time.Duration {
	var total time.Duration
	for _, src := range s.sources {
		if d, ok := DurationOf(src); ok {
			total += d
		}
	}
	return total
}

func (s *Sequence) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.Channels() != 0 {
		return 0, ErrInvalidDstSize
	}

	written := 0
	for written < len(dst) && s.head < len(s.sources) {
		src := s.sources[s.head]

		n, err := src.ReadSamples(dst[written:])
		written += n

		if errors.Is(err, io.EOF) {
			s.head++
			if cerr := src.Close(); cerr != nil {
				return written, fmt.Errorf("closing source %d: %w", s.head-1, cerr)
			}
			continue
		}
		if err != nil {
			return written, fmt.Errorf("reading source %d: %w", s.head, err)
		}
		if n == 0 {
			// Source has nothing right now; hand back what we have.
			break
		}
	}

	if written == 0 && s.head >= len(s.sources) {
		return 0, io.EOF
	}
	return written, nil
}

// Close closes every source that has not been drained yet.
func (s *Sequence) Close() error {
	var errs []error
	for ; s.head < len(s.sources); s.head++ {
		if err := s.sources[s.head].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
