// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/notesynth/audio"
	"github.com/ik5/notesynth/utils"
)

const (
	channels   = 2
	sampleSize = 2 // bytes, int16 little-endian
	frameSize  = channels * sampleSize
)

// ErrNotMP3File indicates go-mp3 could not find a valid frame header.
var ErrNotMP3File = errors.New("not an MP3 file")

// mp3Reader is the part of gomp3.Decoder the source uses.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec     mp3Reader
	buf     []byte
	pending int // bytes of a split sample carried over from the last Read
}

func newSource(dec mp3Reader) *source {
	return &source{dec: dec, buf: make([]byte, 8192)}
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / sampleSize }

// Len reports the frame count, or 0 when go-mp3 cannot tell.
func (s *source) Len() int {
	if n := s.dec.Length(); n > 0 {
		return int(n / frameSize)
	}
	return 0
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * sampleSize
	if cap(s.buf) < need {
		buf := make([]byte, need)
		copy(buf, s.buf[:s.pending])
		s.buf = buf
	}
	s.buf = s.buf[:need]

	n, err := io.ReadAtLeast(s.dec, s.buf[s.pending:], sampleSize-s.pending)
	n += s.pending
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		if n < sampleSize {
			s.pending = 0
			return 0, io.EOF
		}
	case err != nil:
		return 0, fmt.Errorf("decoding MP3: %w", err)
	}

	samples := n / sampleSize
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*sampleSize:]))
		dst[i] = utils.PCMToFloat(int(v), 16)
	}

	s.pending = copy(s.buf, s.buf[samples*sampleSize:n])
	return samples, nil
}

// Decoder reads MPEG-1/2 Layer III streams. Output is always 16-bit
// stereo at the stream's sample rate.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}
	return newSource(dec), nil
}
