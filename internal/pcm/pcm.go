// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders to float sample sources.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/notesynth/utils"
)

// Reader is the part of go-audio's wav and aiff decoders that Source needs.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM from a go-audio decoder and normalizes it to
// float32 in [-1, 1).
type Source struct {
	dec      Reader
	format   *goaudio.Format
	bitDepth int
	frames   int
	buf      *goaudio.IntBuffer
}

// NewSource wraps dec. frames is the total frame count when known, or 0.
func NewSource(dec Reader, format *goaudio.Format, bitDepth, frames int) *Source {
	return &Source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
		frames:   frames,
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Close() error    { return nil }
func (s *Source) Len() int        { return s.frames }
func (s *Source) BitDepth() int   { return s.bitDepth }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.buf.Data = s.buf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = utils.PCMToFloat(v, s.bitDepth)
	}

	return n, nil
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek. go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
