// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/notesynth/audio"
	"github.com/ik5/notesynth/internal/pcm"
)

func supportedDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	}
	return false
}

// Decoder reads uncompressed AIFF files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading header: %w", ErrNotAiffFile, err)
		}
		return nil, ErrNotAiffFile
	}

	format := dec.Format()
	if format == nil || format.NumChannels == 0 || format.SampleRate == 0 {
		return nil, ErrUnsupportedAiffLayout
	}
	if !supportedDepth(int(dec.BitDepth)) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	return pcm.NewSource(dec, format, int(dec.BitDepth), int(dec.NumSampleFrames)), nil
}

// Encode drains src into w as big-endian PCM of bitDepth bits.
func Encode(w io.WriteSeeker, src audio.Source, bitDepth int) error {
	if !supportedDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	enc := aiff.NewEncoder(w, src.SampleRate(), bitDepth, src.Channels())
	if err := pcm.Drain(enc, src, bitDepth); err != nil {
		return err
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing AIFF: %w", err)
	}
	return nil
}
