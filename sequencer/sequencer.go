// SPDX-License-Identifier: EPL-2.0

// Package sequencer turns a song's note list into a playback sequence.
//
// Each note becomes a sine tone at its resolved pitch followed by a short
// silence, so consecutive notes never meet on a waveform discontinuity:
//
//	seq, err := sequencer.New().Compose(notes)
//	// seq.Sources(): tone, gap, tone, gap, ...
//
// A malformed note stops composition with a *NoteError unless
// WithSkipInvalid is set, in which case the note is logged and dropped.
package sequencer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ik5/notesynth/audio"
	"github.com/ik5/notesynth/pitch"
	"github.com/ik5/notesynth/song"
)

// NoteError reports which note of a song could not be sequenced.
type NoteError struct {
	Index int
	Note  song.Note
	Err   error
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("note %d (%q, %vs): %v", e.Index+1, e.Note.Name, e.Note.Duration, e.Err)
}

func (e *NoteError) Unwrap() error { return e.Err }

// Sequencer composes notes into an audio.Sequence.
type Sequencer struct {
	gap         time.Duration
	skipInvalid bool
	logger      *slog.Logger
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithGap sets the silence appended after every note. Negative values are
// treated as zero.
func WithGap(d time.Duration) Option {
	return func(s *Sequencer) {
		s.gap = max(d, 0)
	}
}

// WithSkipInvalid drops malformed notes instead of failing the song.
func WithSkipInvalid(skip bool) Option {
	return func(s *Sequencer) {
		s.skipInvalid = skip
	}
}

// WithLogger sets the logger used for skipped notes and debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sequencer) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(opts ...Option) *Sequencer {
	s := &Sequencer{
		gap:    audio.DefaultGap,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Gap is the silence appended after each note.
func (s *Sequencer) Gap() time.Duration { return s.gap }

// streams builds the tone and trailing gap for one note.
func (s *Sequencer) streams(n song.Note) (*audio.Tone, *audio.Tone, error) {
	freq, err := pitch.Frequency(n.Name)
	if err != nil {
		return nil, nil, err
	}

	tone, err := audio.NewTone(freq, n.Duration)
	if err != nil {
		return nil, nil, err
	}

	gap, err := audio.NewSilence(s.gap)
	if err != nil {
		return nil, nil, err
	}

	return tone, gap, nil
}

// Compose resolves every note and returns the playback sequence. Tone and
// gap streams appear in input order.
func (s *Sequencer) Compose(notes []song.Note) (*audio.Sequence, error) {
	seq, err := audio.NewSequence()
	if err != nil {
		return nil, err
	}

	for i, n := range notes {
		tone, gap, err := s.streams(n)
		if err != nil {
			nerr := &NoteError{Index: i, Note: n, Err: err}
			if !s.skipInvalid {
				return nil, nerr
			}
			s.logger.Warn("skipping note", "index", i+1, "note", n.Name, "error", err)
			continue
		}

		if err := seq.Append(tone, gap); err != nil {
			return nil, err
		}
		s.logger.Debug("note", "index", i+1, "note", n.Name,
			"frequency", tone.Frequency(), "samples", tone.Len())
	}

	return seq, nil
}

// Compose is New(opts...).Compose(notes).
func Compose(notes []song.Note, opts ...Option) (*audio.Sequence, error) {
	return New(opts...).Compose(notes)
}
